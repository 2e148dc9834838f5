package core

import (
	"strings"
	"testing"
	"time"
)

func TestTimingRingOrder(t *testing.T) {
	ClearTimingRing()
	defer ClearTimingRing()

	for i := 0; i < TimingRingSize+5; i++ {
		RecordTiming(EvtFrame, 0, uint64(i), uint32(i), 0)
	}

	var events [TimingRingSize]TimingEvent
	n := TimingEvents(&events)
	if n != TimingRingSize {
		t.Fatalf("Expected %d events, got %d", TimingRingSize, n)
	}
	if events[0].Value1 != 5 {
		t.Errorf("Expected oldest surviving event 5, got %d", events[0].Value1)
	}
	if events[n-1].Value1 != TimingRingSize+4 {
		t.Errorf("Expected newest event %d, got %d", TimingRingSize+4, events[n-1].Value1)
	}
}

func TestDumpTimingRing(t *testing.T) {
	ClearTimingRing()
	defer ClearTimingRing()

	var lines []string
	SetDebugWriter(func(s string) { lines = append(lines, s) })
	defer SetDebugWriter(func(string) {})

	RecordTiming(EvtNoteOn, 64, 1234, 60, 1)
	RecordTiming(EvtPresetRejected, 0, 1300, 0, 0)
	DumpTimingRing()

	if len(lines) != 4 {
		t.Fatalf("Expected header, 2 events and footer, got %d lines: %v", len(lines), lines)
	}
	if !strings.Contains(lines[1], "NOTE_ON key=64 clock=1234 v1=60 v2=1") {
		t.Errorf("Unexpected event line: %q", lines[1])
	}
	if !strings.Contains(lines[2], "PRESET_REJECTED!") {
		t.Errorf("Unexpected event line: %q", lines[2])
	}
}

func TestDebugPrintlnRespectsEnable(t *testing.T) {
	var got []string
	SetDebugWriter(func(s string) { got = append(got, s) })
	defer SetDebugWriter(func(string) {})

	SetDebugEnabled(false)
	DebugPrintln("hidden")
	SetDebugEnabled(true)
	DebugPrintln("shown")
	SetDebugEnabled(false)

	if len(got) != 1 || got[0] != "shown" {
		t.Errorf("Expected only the enabled message, got %v", got)
	}
}

func TestItoa(t *testing.T) {
	testCases := map[int]string{
		0:      "0",
		7:      "7",
		-7:     "-7",
		140:    "140",
		-8192:  "-8192",
		123456: "123456",
	}
	for in, expected := range testCases {
		if got := Itoa(in); got != expected {
			t.Errorf("Itoa(%d) = %q, expected %q", in, got, expected)
		}
	}
	if got := utoa(4294967295); got != "4294967295" {
		t.Errorf("utoa(max) = %q", got)
	}
}

func TestDebugAsync(t *testing.T) {
	got := make(chan string, 4)
	SetDebugWriter(func(msg string) { got <- msg })
	defer SetDebugWriter(func(string) {})
	defer SetDebugEnabled(false)

	SetDebugEnabled(false)
	InitAsyncDebug()
	DebugAsync("dropped")

	SetDebugEnabled(true)
	DebugAsync("[KNOB] hello")
	select {
	case msg := <-got:
		if msg != "[KNOB] hello" {
			t.Errorf("Expected the queued message, got %q", msg)
		}
	case <-time.After(time.Second):
		t.Fatal("Async message never written")
	}
	select {
	case msg := <-got:
		t.Errorf("Unexpected extra message %q", msg)
	default:
	}
}
