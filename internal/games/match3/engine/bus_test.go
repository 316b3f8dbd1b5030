package engine

import (
	"reflect"
	"testing"
)

func TestBusDeliversInSubscriptionOrder(t *testing.T) {
	b := NewBus()
	var got []string
	for _, name := range []string{"first", "second", "third"} {
		name := name
		b.Subscribe(ListenerFunc(func(Event) { got = append(got, name) }))
	}

	b.Publish(Settled{})

	if want := []string{"first", "second", "third"}; !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestBusUnsubscribe(t *testing.T) {
	b := NewBus()
	var got []string
	a := b.Subscribe(ListenerFunc(func(Event) { got = append(got, "a") }))
	b.Subscribe(ListenerFunc(func(Event) { got = append(got, "b") }))

	if !b.Unsubscribe(a) {
		t.Fatal("Unsubscribe() = false for a live subscription")
	}
	if b.Unsubscribe(a) {
		t.Error("Unsubscribe() = true twice")
	}

	b.Publish(Settled{})
	if !reflect.DeepEqual(got, []string{"b"}) {
		t.Errorf("delivered to %v, want [b]", got)
	}
	if b.Len() != 1 {
		t.Errorf("Len() = %d, want 1", b.Len())
	}
}

func TestBusChangesDuringPublishApplyNextTime(t *testing.T) {
	b := NewBus()
	var got []string
	var self Subscription
	self = b.Subscribe(ListenerFunc(func(Event) {
		got = append(got, "once")
		b.Unsubscribe(self)
		b.Subscribe(ListenerFunc(func(Event) { got = append(got, "late") }))
	}))
	b.Subscribe(ListenerFunc(func(Event) { got = append(got, "steady") }))

	b.Publish(Settled{})
	if want := []string{"once", "steady"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("first publish = %v, want %v", got, want)
	}

	got = nil
	b.Publish(Settled{})
	if want := []string{"steady", "late"}; !reflect.DeepEqual(got, want) {
		t.Errorf("second publish = %v, want %v", got, want)
	}
}
