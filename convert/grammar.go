package convert

import "regexp"

// Full-string scalar grammars. Compiled once at package init and never
// mutated afterwards, so they are safe to share across goroutines.
var (
	trueText    = regexp.MustCompile(`^(?:true|True|TRUE)$`)
	falseText   = regexp.MustCompile(`^(?:false|False|FALSE)$`)
	decimalText = regexp.MustCompile(`^[-+]?[0-9]+$`)
	octalText   = regexp.MustCompile(`^0o[0-7]+$`)
	hexText     = regexp.MustCompile(`^0x[0-9a-fA-F]+$`)
	floatText   = regexp.MustCompile(`^[-+]?(\.[0-9]+|[0-9]+(\.[0-9]*)?)([eE][-+]?[0-9]+)?$`)
	infText     = regexp.MustCompile(`^[-+]?\.(inf|Inf|INF)$`)
	nanText     = regexp.MustCompile(`^\.(nan|NaN|NAN)$`)
)
