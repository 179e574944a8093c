package event

import "testing"

type countingListener struct {
	got []Event
}

func (l *countingListener) OnEvent(e Event) {
	l.got = append(l.got, e)
}

func TestDispatchOnlyReachesSubscribers(t *testing.T) {
	d := NewDispatcher()
	waves := &countingListener{}
	kills := &countingListener{}
	d.Subscribe(WaveStarted, waves)
	d.Subscribe(EnemyDestroyed, kills)

	d.Dispatch(Event{Type: WaveStarted, Data: 2})

	if len(waves.got) != 1 || waves.got[0].Data != 2 {
		t.Errorf("Expected one WaveStarted with data 2, got %v", waves.got)
	}
	if len(kills.got) != 0 {
		t.Errorf("Expected no EnemyDestroyed events, got %v", kills.got)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	l := &countingListener{}
	d.Subscribe(GameOver, l)
	d.Unsubscribe(GameOver, l)

	d.Dispatch(Event{Type: GameOver})

	if len(l.got) != 0 {
		t.Errorf("Expected no events after unsubscribe, got %d", len(l.got))
	}
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	d.Subscribe(BulletFired, ListenerFunc(func(Event) { calls++ }))
	d.Unsubscribe(BulletFired, ListenerFunc(func(Event) {}))

	d.Dispatch(Event{Type: BulletFired})
	d.Dispatch(Event{Type: BulletFired})

	if calls != 2 {
		t.Errorf("Expected 2 calls, got %d", calls)
	}
}
