package scan

import (
	"strings"

	"aeroxfer/internal/domain"
)

// extractState is the block extractor's state machine state.
type extractState int

const (
	stateScanning extractState = iota
	stateAwaitHeader
	stateCollecting
)

// ExtractBlocks walks the classified lines and groups them into blocks. A
// block opens on a label line, takes its header from the next line carrying
// a header keyword, and collects data rows whose token count matches the
// header. Mismatched rows are dropped silently; summary and metadata lines
// are discarded. A block finalizes on the next label line or at end of
// input, and is kept only when it has both a header and at least one row.
func ExtractBlocks(lines []string) []domain.Block {
	var blocks []domain.Block
	var cur *domain.Block
	state := stateScanning

	finalize := func() {
		if cur != nil && len(cur.HeaderTokens) > 0 && len(cur.Rows) > 0 {
			blocks = append(blocks, *cur)
		}
		cur = nil
	}

	for i := range lines {
		line := strings.TrimSpace(lines[i])
		next := ""
		if i+1 < len(lines) {
			next = strings.TrimSpace(lines[i+1])
		}

		kind := classify(line, next)

		// A header-keyword line directly after a label is always the
		// header, even if it would pass the label test on its own.
		if state == stateAwaitHeader && kind != kindData && kind != kindMetadata && hasHeaderToken(line) {
			cur.HeaderTokens = strings.Fields(line)
			state = stateCollecting
			continue
		}

		if kind == kindLabel {
			finalize()
			cur = &domain.Block{Label: line}
			state = stateAwaitHeader
			continue
		}

		if state == stateCollecting && kind == kindData {
			tokens := strings.Fields(line)
			if len(tokens) == len(cur.HeaderTokens) {
				cur.Rows = append(cur.Rows, tokens)
			}
			// wrong token count: dropped, not an error
		}
		// metadata, summary, and noise lines are skipped in every state
	}

	finalize()
	return blocks
}

// Labels returns the labels of the blocks in extraction order.
func Labels(blocks []domain.Block) []string {
	labels := make([]string, len(blocks))
	for i := range blocks {
		labels[i] = blocks[i].Label
	}
	return labels
}
