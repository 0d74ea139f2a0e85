package earlyerrors

import "github.com/kiteco/esparse/kite-golib/status"

var (
	section = status.NewSection("lang/javascript (earlyerrors)")

	validateDuration = section.SampleDuration("Validate duration")
	invalidPrograms  = section.Counter("Programs with early errors")
	reported         = section.Counter("Early errors reported")
)
