package event

import (
	"sync"

	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// Subscription identifies a registered set of handlers.
type Subscription int

type subscriber struct {
	id       Subscription
	handlers Handlers
}

// Bus delivers board notifications to subscribers synchronously, in
// subscription order, on the publishing goroutine.
type Bus struct {
	subscribers []subscriber
	nextID      Subscription

	sync.Mutex
}

func NewBus() *Bus {
	return &Bus{nextID: 1}
}

func (b *Bus) Subscribe(h Handlers) Subscription {
	b.Lock()
	defer b.Unlock()

	id := b.nextID
	b.nextID++
	b.subscribers = append(b.subscribers, subscriber{id: id, handlers: h})

	return id
}

// Unsubscribe removes the handlers. It reports false for an unknown or
// already removed subscription.
func (b *Bus) Unsubscribe(id Subscription) bool {
	b.Lock()
	defer b.Unlock()

	for i, s := range b.subscribers {
		if s.id == id {
			b.subscribers = append(b.subscribers[:i:i], b.subscribers[i+1:]...)
			return true
		}
	}

	return false
}

// Len returns the number of subscribers.
func (b *Bus) Len() int {
	b.Lock()
	defer b.Unlock()

	return len(b.subscribers)
}

// snapshot lets handlers subscribe or unsubscribe while being called.
func (b *Bus) snapshot() []Handlers {
	b.Lock()
	defer b.Unlock()

	hs := make([]Handlers, len(b.subscribers))
	for i, s := range b.subscribers {
		hs[i] = s.handlers
	}
	return hs
}

func (b *Bus) PublishGameOver(over bool) {
	for _, h := range b.snapshot() {
		if h.GameOver != nil {
			h.GameOver(over)
		}
	}
}

func (b *Bus) PublishNextPiece(p mino.PieceType) {
	for _, h := range b.snapshot() {
		if h.NextPiece != nil {
			h.NextPiece(p)
		}
	}
}

func (b *Bus) PublishScore(e ScoreEvent) {
	for _, h := range b.snapshot() {
		if h.Score != nil {
			h.Score(e)
		}
	}
}

func (b *Bus) PublishBoard() {
	for _, h := range b.snapshot() {
		if h.Board != nil {
			h.Board()
		}
	}
}
