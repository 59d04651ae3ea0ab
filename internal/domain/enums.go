package domain

// BlockStatus represents the outcome of processing a single block.
type BlockStatus string

const (
	BlockStatusSuccess BlockStatus = "success"
	BlockStatusSkipped BlockStatus = "skipped"
	BlockStatusFailed  BlockStatus = "failed"
)

// SkipReason identifies why a block was skipped or failed. The taxonomy is
// closed: every non-success report entry carries exactly one of these.
type SkipReason string

const (
	ReasonNoRowsSelected    SkipReason = "no_rows_selected"
	ReasonSourceMissing     SkipReason = "source_missing"
	ReasonTargetMissing     SkipReason = "target_missing"
	ReasonTargetNotMapped   SkipReason = "target_not_mapped"
	ReasonMissingColumns    SkipReason = "missing_columns"
	ReasonNumericConversion SkipReason = "numeric_conversion_failed"
	ReasonProcessingFailed  SkipReason = "processing_failed"
	ReasonNoProjectData     SkipReason = "no_project_data"
)

// BlockFileExtensions lists extensions (without dot) that are always treated
// as block-table text files, short-circuiting content sniffing.
var BlockFileExtensions = map[string]bool{
	"dat": true,
	"blk": true,
	"tab": true,
}

// SpreadsheetExtensions lists extensions handled by the plain table loaders,
// never by the block extractor.
var SpreadsheetExtensions = map[string]bool{
	"csv":  true,
	"xls":  true,
	"xlsx": true,
}
