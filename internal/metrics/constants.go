package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameCasesOpened       = "cases_opened_total"
	MetricNameItemsSold         = "items_sold_total"
	MetricNameCurrencySpent     = "currency_spent_total"
	MetricNameCurrencyEarned    = "currency_earned_total"
	MetricNameCurrencyDeposited = "currency_deposited_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of events whose payload could not be decoded"
)

// Business metric help text
const (
	HelpTextCasesOpened       = "Total number of cases opened, by case and drawn rarity"
	HelpTextItemsSold         = "Total number of vegetables sold"
	HelpTextCurrencySpent     = "Total currency spent opening cases"
	HelpTextCurrencyEarned    = "Total currency earned selling vegetables"
	HelpTextCurrencyDeposited = "Total currency deposited"
)

// Label names
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelCase   = "case"
	LabelItem   = "item"
	LabelRarity = "rarity"
)

// UnmatchedRoute labels requests that no route matched, keeping path cardinality bounded
const UnmatchedRoute = "unmatched"

// HTTPLatencyBuckets ranges from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// Log messages
const (
	LogMsgPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
