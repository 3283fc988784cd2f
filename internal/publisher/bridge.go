package publisher

import (
	"context"
	"log/slog"

	"media_explorer/internal/state"
)

// Container names used in StateMessage.Container.
const (
	ContainerImageItems          = "image_items"
	ContainerSelectedImage       = "selected_image"
	ContainerMainContainerWidth  = "main_container_width"
	ContainerMainContainerHeight = "main_container_height"
)

type Publisher interface {
	Publish(ctx context.Context, container string, value any) error
}

// Bridge forwards every write to the store's containers to pub, starting
// with their current values. The returned function detaches it.
// Publish failures are logged and never reach the writer.
func Bridge(ctx context.Context, store *state.Store, pub Publisher, logger *slog.Logger) func() {
	forward := func(container string) func(any) {
		return func(value any) {
			if err := pub.Publish(ctx, container, value); err != nil {
				logger.Error("failed to publish state change",
					"container", container,
					"error", err,
				)
			}
		}
	}

	unsubscribers := []func(){
		subscribe(store.ImageItems, forward(ContainerImageItems)),
		subscribe(store.SelectedImage, forward(ContainerSelectedImage)),
		subscribe(store.MainContainerWidth, forward(ContainerMainContainerWidth)),
		subscribe(store.MainContainerHeight, forward(ContainerMainContainerHeight)),
	}

	return func() {
		for _, unsubscribe := range unsubscribers {
			unsubscribe()
		}
	}
}

func subscribe[T any](o *state.Observable[T], fn func(any)) func() {
	return o.Subscribe(func(v T) { fn(v) })
}
