package javascript

import "github.com/kiteco/esparse/kite-golib/status"

var (
	section = status.NewSection("lang/javascript (endpoint)")

	parseStatusCode    = section.Breakdown("Parse endpoint status codes")
	validateStatusCode = section.Breakdown("Validate endpoint status codes")
	tokensStatusCode   = section.Breakdown("Tokens endpoint status codes")

	parseLatency    = section.SampleDuration("Parse endpoint latency")
	validateLatency = section.SampleDuration("Validate endpoint latency")
	tokensLatency   = section.SampleDuration("Tokens endpoint latency")

	sourceBytes     = section.Counter("Source bytes received")
	expiredRequests = section.Counter("Requests that timed out")
)
