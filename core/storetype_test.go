package core_test

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/jmgilman/go/fatls/core"
)

// TestStoreType_String verifies StoreType.String() returns correct string representations.
func TestStoreType_String(t *testing.T) {
	tests := []struct {
		name      string
		storeType core.StoreType
		expected  string
	}{
		{name: "Unknown", storeType: core.StoreTypeUnknown, expected: "unknown"},
		{name: "Local", storeType: core.StoreTypeLocal, expected: "local"},
		{name: "Memory", storeType: core.StoreTypeMemory, expected: "memory"},
		{name: "Remote", storeType: core.StoreTypeRemote, expected: "remote"},
		{name: "Invalid", storeType: core.StoreType(999), expected: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.storeType.String()
			if result != tt.expected {
				t.Errorf("StoreType(%d).String() = %q, want %q", tt.storeType, result, tt.expected)
			}
		})
	}
}

// Compile-time checks that common writers satisfy Sink.
var (
	_ core.Sink = (*bytes.Buffer)(nil)
	_ core.Sink = (*bufio.Writer)(nil)
	_ core.Sink = (*strings.Builder)(nil)
)

// TestSink_WriteOrder verifies a Sink sees bytes and sequences in call order.
func TestSink_WriteOrder(t *testing.T) {
	var sb strings.Builder
	var sink core.Sink = &sb

	if err := sink.WriteByte('a'); err != nil {
		t.Fatalf("WriteByte: %v", err)
	}
	if _, err := io.WriteString(sink, "bc"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	if got := sb.String(); got != "abc" {
		t.Errorf("sink contents = %q, want %q", got, "abc")
	}
}
