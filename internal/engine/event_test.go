package engine

import "testing"

func TestEventInvokeOrder(t *testing.T) {
	var e Event[string]
	var got []string
	e.AddListener(func(s string) { got = append(got, "a:"+s) })
	e.AddListener(func(s string) { got = append(got, "b:"+s) })

	e.Invoke("Point 1")

	if len(got) != 2 || got[0] != "a:Point 1" || got[1] != "b:Point 1" {
		t.Errorf("unexpected invocation order %v", got)
	}
}

func TestEventRemoveListener(t *testing.T) {
	var e Event[int]
	calls := 0
	id := e.AddListener(func(int) { calls++ })
	e.AddListener(func(int) { calls += 10 })

	e.RemoveListener(id)
	e.Invoke(1)

	if calls != 10 {
		t.Errorf("Expected only the second listener to run, calls=%d", calls)
	}
}

func TestEventNilListener(t *testing.T) {
	var e Event[int]
	if id := e.AddListener(nil); id != 0 {
		t.Errorf("nil listener should not be registered, got id %d", id)
	}
	e.Invoke(0)
}

func TestEventRemoveAllListeners(t *testing.T) {
	var e Event[int]
	calls := 0
	e.AddListener(func(int) { calls++ })
	e.AddListener(func(int) { calls++ })

	e.RemoveAllListeners()
	e.Invoke(1)

	if calls != 0 {
		t.Errorf("Expected no listeners after RemoveAllListeners, calls=%d", calls)
	}
}
