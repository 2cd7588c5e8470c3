package beatlane

import (
	"testing"
)

func TestPersistentDebugMsgsSurviveClear(t *testing.T) {
	dm := &TheDebugPrintManager
	dm.DebugMsgs = dm.DebugMsgs[:0]
	dm.PersistentDebugMsgs = dm.PersistentDebugMsgs[:0]

	DebugPuts("frame", "1")
	DebugPutsPersist("build", "demo")

	ClearDebugMsgs()

	if len(dm.DebugMsgs) != 0 {
		t.Errorf("DebugMsgs after clear = %v, want none", dm.DebugMsgs)
	}
	if len(dm.PersistentDebugMsgs) != 1 {
		t.Fatalf("PersistentDebugMsgs after clear = %v, want one", dm.PersistentDebugMsgs)
	}
	if dm.PersistentDebugMsgs[0].Value != "demo" {
		t.Errorf("persistent value = %q, want %q", dm.PersistentDebugMsgs[0].Value, "demo")
	}
}

func TestDebugPrintfPersistUpdatesInPlace(t *testing.T) {
	dm := &TheDebugPrintManager
	dm.PersistentDebugMsgs = dm.PersistentDebugMsgs[:0]

	DebugPrintfPersist("lanes", "%d", 4)
	DebugPrintfPersist("lanes", "%d", 6)

	if len(dm.PersistentDebugMsgs) != 1 {
		t.Fatalf("same key grew the list: %v", dm.PersistentDebugMsgs)
	}
	if dm.PersistentDebugMsgs[0].Value != "6" {
		t.Errorf("value = %q, want %q", dm.PersistentDebugMsgs[0].Value, "6")
	}
}
