package state

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"media_explorer/internal/source/nasa"
)

func TestObservable_RoundTrip(t *testing.T) {
	o := NewObservable(0)
	assert.Equal(t, 0, o.Get())

	for _, v := range []int{1, 42, -7, 42} {
		o.Set(v)
		assert.Equal(t, v, o.Get())
	}
}

func TestObservable_SubscriberSeesCurrentThenEveryWrite(t *testing.T) {
	o := NewObservable("initial")
	o.Set("before")

	var got []string
	unsubscribe := o.Subscribe(func(v string) { got = append(got, v) })

	o.Set("a")
	o.Set("b")
	o.Set("b")

	assert.Equal(t, []string{"before", "a", "b", "b"}, got)

	unsubscribe()
	o.Set("after")
	assert.Equal(t, []string{"before", "a", "b", "b"}, got)
	assert.Equal(t, 0, o.Observers())

	assert.NotPanics(t, unsubscribe)
}

func TestObservable_NotifiesInSubscriptionOrder(t *testing.T) {
	o := NewObservable(0)

	var order []string
	o.Subscribe(func(int) { order = append(order, "first") })
	unsubscribeSecond := o.Subscribe(func(int) { order = append(order, "second") })
	o.Subscribe(func(int) { order = append(order, "third") })
	order = nil

	o.Set(1)
	assert.Equal(t, []string{"first", "second", "third"}, order)

	order = nil
	unsubscribeSecond()
	o.Set(2)
	assert.Equal(t, []string{"first", "third"}, order)
}

func TestObservable_UnsubscribeDuringNotify(t *testing.T) {
	o := NewObservable(0)

	var calls int
	var unsubscribe func()
	unsubscribe = o.Subscribe(func(v int) {
		calls++
		if v == 1 {
			unsubscribe()
		}
	})

	o.Set(1)
	o.Set(2)
	assert.Equal(t, 2, calls)
}

func TestObservable_SubscribeFromWithinObserver(t *testing.T) {
	o := NewObservable(0)

	var nested []int
	done := make(chan struct{})
	go func() {
		defer close(done)
		o.Subscribe(func(v int) {
			if v == 1 {
				o.Subscribe(func(v int) { nested = append(nested, v) })
			}
		})
		o.Set(1)
		o.Set(2)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Subscribe from within an observer did not return")
	}

	assert.Equal(t, []int{1, 2}, nested)
	assert.Equal(t, 2, o.Observers())
}

func TestObservable_SubscribeDuringConcurrentWrites(t *testing.T) {
	o := NewObservable(0)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 1; i <= 200; i++ {
			o.Set(i)
		}
	}()

	var mu sync.Mutex
	var seen []int
	o.Subscribe(func(v int) {
		mu.Lock()
		seen = append(seen, v)
		mu.Unlock()
	})
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()

	require.NotEmpty(t, seen)
	assert.Equal(t, 200, seen[len(seen)-1])
	for i := 1; i < len(seen); i++ {
		assert.Equal(t, seen[i-1]+1, seen[i])
	}
}

func TestObservable_ConcurrentWritesAreSeenOnceInOrder(t *testing.T) {
	o := NewObservable(0)

	var mu sync.Mutex
	var seen []int
	o.Subscribe(func(v int) {
		mu.Lock()
		seen = append(seen, v)
		mu.Unlock()
	})

	const writers, perWriter = 8, 50
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 1; i <= perWriter; i++ {
				o.Set(w*1000 + i)
			}
		}(w)
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()

	require.Len(t, seen, writers*perWriter+1)
	assert.Equal(t, seen[len(seen)-1], o.Get())

	// each writer's values must appear in the order it wrote them
	last := make(map[int]int)
	for _, v := range seen[1:] {
		w, i := v/1000, v%1000
		assert.Greater(t, i, last[w])
		last[w] = i
	}
}

func TestStore_Defaults(t *testing.T) {
	s := NewStore()

	assert.NotNil(t, s.ImageItems.Get())
	assert.Empty(t, s.ImageItems.Get())
	assert.Nil(t, s.SelectedImage.Get())
	assert.Nil(t, s.MainContainerWidth.Get())
	assert.Nil(t, s.MainContainerHeight.Get())
}

func TestStore_ContainersAreIndependent(t *testing.T) {
	s := NewStore()

	var itemWrites int
	s.ImageItems.Subscribe(func([]nasa.ImageItem) { itemWrites++ })

	orphan := &nasa.ImageItem{Href: "https://example.com/orphan"}
	s.SelectedImage.Set(orphan)

	width := 800
	s.MainContainerWidth.Set(&width)

	assert.Equal(t, 1, itemWrites)
	assert.Same(t, orphan, s.SelectedImage.Get())
	assert.Equal(t, 800, *s.MainContainerWidth.Get())
	assert.Nil(t, s.MainContainerHeight.Get())
}
