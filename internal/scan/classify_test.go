package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMetadata(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"empty line", "", true},
		{"half-width colon annotation", "Date: 2024-06-01", true},
		{"full-width colon annotation", "试验日期：2024-06-01", true},
		{"half-width colon after leading digit", "12:30 run start", false},
		{"cjk prose without colon", "风洞 试验 数据", true},
		{"single short cjk token", "机翼", false},
		{"plain data line", "0.5 1.2 3.4", false},
		{"plain ascii word", "Wing", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsMetadata(tt.line))
		})
	}
}

func TestIsData(t *testing.T) {
	assert.True(t, IsData("0.5 1.2 3.4"))
	assert.True(t, IsData("-3.5 x y"))
	assert.True(t, IsData("1e-3"))
	assert.False(t, IsData("alpha 1.0"))
	assert.False(t, IsData(""))
}

func TestIsSummary(t *testing.T) {
	assert.True(t, IsSummary("CL slope 0.11"))
	assert.True(t, IsSummary("升力线斜率 0.11"))
	assert.False(t, IsSummary("0.5 slope"), "numeric first token is data, not summary")
	assert.False(t, IsSummary("Wing"))
	assert.False(t, IsSummary(""))
}

func TestIsBlockLabel(t *testing.T) {
	const header = "Alpha CL CD Cx Cy Cz/FN CMx CMy CMz"
	longCJK := "这是一段很长的中文描述文字总共超过二十个字符"

	assert.True(t, IsBlockLabel("Wing", "whatever"), "single short token needs no lookahead")
	assert.True(t, IsBlockLabel("Wing Body Assembly", header), "multi-token label accepted in front of a header")
	assert.False(t, IsBlockLabel("Wing Body Assembly", "no header here"))
	assert.True(t, IsBlockLabel("机翼 全模", header), "short cjk text accepted in front of a header")
	assert.False(t, IsBlockLabel(longCJK, header), "long cjk text stays metadata even in front of a header")
	assert.False(t, IsBlockLabel("0.5 1.2", header), "data line is never a label")
	assert.False(t, IsBlockLabel("CL slope 0.11", header), "summary line is never a label")
}

func TestClassifyPriority(t *testing.T) {
	const header = "Alpha CL CD"

	// Colon metadata beats the label lookahead.
	assert.Equal(t, kindMetadata, classify("Stage one: wing", header))
	// A would-be label without colon classifies as a label.
	assert.Equal(t, kindLabel, classify("Wing", header))
	// Data beats everything downstream.
	assert.Equal(t, kindData, classify("0.5 1.2", header))
	// CJK prose that fails the label test degrades to metadata.
	assert.Equal(t, kindMetadata, classify("风洞 试验 数据", "not a header"))
	// Plain multi-token ascii with no header lookahead is noise.
	assert.Equal(t, kindNoise, classify("some stray words", "not a header"))
}
