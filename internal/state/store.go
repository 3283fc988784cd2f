package state

import "media_explorer/internal/source/nasa"

// Store owns the containers shared across one session. Nothing ties the
// containers together: SelectedImage may hold an item that is no longer in
// ImageItems.
type Store struct {
	ImageItems          *Observable[[]nasa.ImageItem]
	SelectedImage       *Observable[*nasa.ImageItem]
	MainContainerWidth  *Observable[*int]
	MainContainerHeight *Observable[*int]
}

func NewStore() *Store {
	return &Store{
		ImageItems:          NewObservable([]nasa.ImageItem{}),
		SelectedImage:       NewObservable[*nasa.ImageItem](nil),
		MainContainerWidth:  NewObservable[*int](nil),
		MainContainerHeight: NewObservable[*int](nil),
	}
}
