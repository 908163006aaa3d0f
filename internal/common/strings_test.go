package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"PASS", "FAIL"}, SplitList("PASS,FAIL"))
	assert.Equal(t, []string{"PASS", "pass", "WARN"}, SplitList(" PASS, pass,,WARN,PASS "))
	assert.Empty(t, SplitList(""))
	assert.Empty(t, SplitList(" , ,"))
}
