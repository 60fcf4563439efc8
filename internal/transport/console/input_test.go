package console

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Pump(t *testing.T) {
	lines := Pump(context.Background(), strings.NewReader("1\r\nWidget\n\n9.99"))

	var got []string
	for l := range lines {
		got = append(got, l)
	}

	assert.Equal(t, []string{"1", "Widget", "", "9.99"}, got)
}

func Test_Pump_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	lines := Pump(ctx, strings.NewReader("a\nb\nc\n"))

	n := 0
	for range lines {
		n++
	}

	assert.LessOrEqual(t, n, 3)
}
