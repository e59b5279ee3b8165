package realtime

import (
	"testing"
	"time"

	"github.com/craftlink/community-api/internal/core/domain"
)

func msg(sender, receiver, body string) domain.Message {
	return domain.Message{
		SenderID:   sender,
		ReceiverID: receiver,
		Body:       body,
		CreatedAt:  time.Now().UTC(),
	}
}

func TestHub_PublishReachesSubscriber(t *testing.T) {
	hub := NewHub()

	ch, cancel := hub.Subscribe(domain.PairKey("alice", "bruno"))
	defer cancel()

	hub.Publish(msg("alice", "bruno", "hola"))

	select {
	case m := <-ch:
		if m.Body != "hola" {
			t.Errorf("expected body %q, got %q", "hola", m.Body)
		}
	case <-time.After(time.Second):
		t.Fatal("subscriber did not receive the message")
	}
}

func TestHub_BothDirectionsShareOneChannel(t *testing.T) {
	hub := NewHub()

	ch, cancel := hub.Subscribe(domain.PairKey("bruno", "alice"))
	defer cancel()

	hub.Publish(msg("alice", "bruno", "one"))
	hub.Publish(msg("bruno", "alice", "two"))

	for _, want := range []string{"one", "two"} {
		select {
		case m := <-ch:
			if m.Body != want {
				t.Errorf("expected %q, got %q", want, m.Body)
			}
		case <-time.After(time.Second):
			t.Fatalf("did not receive %q", want)
		}
	}
}

func TestHub_PublishIsScopedToPair(t *testing.T) {
	hub := NewHub()

	other, cancel := hub.Subscribe(domain.PairKey("carla", "dario"))
	defer cancel()

	hub.Publish(msg("alice", "bruno", "private"))

	select {
	case m := <-other:
		t.Errorf("unrelated pair received %q", m.Body)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_CancelRemovesSubscriber(t *testing.T) {
	hub := NewHub()
	key := domain.PairKey("alice", "bruno")

	_, cancel := hub.Subscribe(key)
	if got := hub.Subscribers(key); got != 1 {
		t.Fatalf("expected 1 subscriber, got %d", got)
	}

	cancel()
	if got := hub.Subscribers(key); got != 0 {
		t.Errorf("expected 0 subscribers after cancel, got %d", got)
	}

	// A second cancel is a no-op.
	cancel()
}

func TestHub_SlowSubscriberDoesNotBlockPublish(t *testing.T) {
	hub := NewHub()
	key := domain.PairKey("alice", "bruno")

	_, cancel := hub.Subscribe(key)
	defer cancel()

	// Overfill the buffer; Publish must keep returning.
	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer*2; i++ {
			hub.Publish(msg("alice", "bruno", "flood"))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}

func TestHub_FanOutToMultipleSubscribers(t *testing.T) {
	hub := NewHub()
	key := domain.PairKey("alice", "bruno")

	first, cancelFirst := hub.Subscribe(key)
	defer cancelFirst()
	second, cancelSecond := hub.Subscribe(key)
	defer cancelSecond()

	hub.Publish(msg("alice", "bruno", "both"))

	for i, ch := range []<-chan domain.Message{first, second} {
		select {
		case m := <-ch:
			if m.Body != "both" {
				t.Errorf("subscriber %d: expected %q, got %q", i, "both", m.Body)
			}
		case <-time.After(time.Second):
			t.Fatalf("subscriber %d did not receive the message", i)
		}
	}
}
