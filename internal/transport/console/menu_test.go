package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_mainMenuOptions(t *testing.T) {
	empty := mainMenuOptions(0)
	assert.Len(t, empty, 2)
	assert.Equal(t, actionAdd, empty[0].action)
	assert.Equal(t, actionExit, empty[1].action)

	full := mainMenuOptions(1)
	assert.Len(t, full, 6)
	assert.Equal(t, actionView, full[0].action)
	assert.Equal(t, actionExit, full[5].action)
}

func Test_validMenuSelection(t *testing.T) {
	testCases := []struct {
		count     int
		selection int
		expected  bool
	}{
		{count: 0, selection: 0, expected: false},
		{count: 0, selection: 1, expected: true},
		{count: 0, selection: 2, expected: true},
		{count: 0, selection: 3, expected: false},
		{count: 5, selection: 6, expected: true},
		{count: 5, selection: 7, expected: false},
		{count: 5, selection: -1, expected: false},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, validMenuSelection(mainMenuOptions(tc.count), tc.selection), "count=%d selection=%d", tc.count, tc.selection)
	}
}
