package stream

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func readAll(t *testing.T, input string) []*Event {
	t.Helper()
	dec, err := NewDecoder(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var events []*Event
	for {
		ev, err := dec.ReadEvent()
		if err == io.EOF {
			return events
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		events = append(events, ev)
	}
}

func TestDecoderBasic_EmptyObject(t *testing.T) {
	dec, err := NewDecoder(bytes.NewReader([]byte(`{}`)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	event, err := dec.ReadEvent()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event.Type != EventBeginObject {
		t.Errorf("expected EventBeginObject, got %v", event.Type)
	}
	if dec.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", dec.Depth())
	}

	event, err = dec.ReadEvent()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event.Type != EventEndObject {
		t.Errorf("expected EventEndObject, got %v", event.Type)
	}
	if dec.Depth() != 0 {
		t.Errorf("expected depth 0, got %d", dec.Depth())
	}

	// Should be EOF now
	_, err = dec.ReadEvent()
	if err != io.EOF {
		t.Errorf("expected EOF, got %v", err)
	}
	if dec.Current() != nil {
		t.Errorf("expected no current event at EOF, got %v", dec.Current().Type)
	}
}

func TestDecoderEvents(t *testing.T) {
	events := readAll(t, `{"a": [1, 2.5, "s", true, false, null], "b": {"a": 1}}`)
	expected := []EventType{
		EventBeginObject,
		EventKey, EventBeginArray,
		EventInt, EventFloat, EventString, EventBool, EventBool, EventNull,
		EventEndArray,
		EventKey, EventBeginObject, EventKey, EventInt, EventEndObject,
		EventEndObject,
	}
	if len(events) != len(expected) {
		t.Fatalf("expected %d events, got %d", len(expected), len(events))
	}
	for i, ev := range events {
		if ev.Type != expected[i] {
			t.Errorf("event %d: expected %s, got %s", i, expected[i], ev.Type)
		}
	}
	if events[1].Key != "a" || events[10].Key != "b" {
		t.Errorf("unexpected keys %q, %q", events[1].Key, events[10].Key)
	}
	if events[4].Number != "2.5" {
		t.Errorf("expected float text 2.5, got %q", events[4].Number)
	}
	if !events[6].Bool || events[7].Bool {
		t.Errorf("unexpected booleans")
	}
}

func TestDecoderStringValueNotKey(t *testing.T) {
	// a string in value position must not be treated as a key
	events := readAll(t, `{"k": "v", "k2": ["x"]}`)
	if events[2].Type != EventString || events[2].String != "v" {
		t.Errorf("expected string value v, got %s", events[2].Describe())
	}
	if events[3].Type != EventKey || events[3].Key != "k2" {
		t.Errorf("expected key k2, got %s", events[3].Describe())
	}
	if events[5].Type != EventString {
		t.Errorf("expected string element, got %s", events[5].Describe())
	}
}

func TestDecoderDuplicateNames(t *testing.T) {
	events := readAll(t, `{"a": 1, "a": 2}`)
	if len(events) != 6 {
		t.Fatalf("expected 6 events, got %d", len(events))
	}
}

func TestDecoderBigNumbers(t *testing.T) {
	events := readAll(t, `[123456789012345678901234567890, -7, 1e400]`)
	i, err := events[1].BigInt()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if i.String() != "123456789012345678901234567890" {
		t.Errorf("expected full precision, got %s", i)
	}
	if _, err := events[1].Int64(); err == nil {
		t.Errorf("expected int64 overflow error")
	}
	n, err := events[2].Int64()
	if err != nil || n != -7 {
		t.Errorf("expected -7, got %d (%v)", n, err)
	}
	if events[3].Type != EventFloat {
		t.Errorf("expected float event, got %s", events[3].Type)
	}
}

func TestDecoderMultipleRoots(t *testing.T) {
	events := readAll(t, "1 \"two\"\n[3]\n")
	if len(events) != 4 {
		t.Fatalf("expected 4 events, got %d", len(events))
	}
}

func TestDecoderSyntaxError(t *testing.T) {
	for _, input := range []string{`{"a" 1}`, `[1,]`, `{"a":`, `[1 2]`, `tru`} {
		dec, err := NewDecoder(strings.NewReader(input))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for {
			_, err = dec.ReadEvent()
			if err != nil {
				break
			}
		}
		var serr *Error
		if !errors.As(err, &serr) {
			t.Errorf("%s: expected *Error, got %v", input, err)
		}
	}
}

func TestDecoderReset(t *testing.T) {
	dec, err := NewDecoder(strings.NewReader(`[`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := dec.ReadEvent(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dec.Reset(strings.NewReader(`"x"`))
	if dec.Depth() != 0 {
		t.Errorf("expected depth 0 after reset, got %d", dec.Depth())
	}
	ev, err := dec.ReadEvent()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Type != EventString || ev.String != "x" {
		t.Errorf("expected string x, got %s", ev.Describe())
	}
	if dec.Offset() != 3 {
		t.Errorf("expected offset 3, got %d", dec.Offset())
	}
}
