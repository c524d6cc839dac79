package formatters

import (
	"time"

	"github.com/goliatone/go-translate/pkg/culture"
)

// FormatDate renders a long-form localized date.
func FormatDate(ctx Context, value any) (string, error) {
	t, err := resolveMoment(ctx, value)
	if err != nil {
		return "", err
	}
	return ctx.cultures().FormatDate(ctx.Locale, t), nil
}

// FormatTime renders a short localized clock time.
func FormatTime(ctx Context, value any) (string, error) {
	t, err := resolveMoment(ctx, value)
	if err != nil {
		return "", err
	}
	return ctx.cultures().FormatTime(ctx.Locale, t), nil
}

// FormatDateTime renders the full weekday, date, and short time. DST
// transitions follow the effective zone.
func FormatDateTime(ctx Context, value any) (string, error) {
	t, err := resolveMoment(ctx, value)
	if err != nil {
		return "", err
	}
	return ctx.cultures().FormatDateTime(ctx.Locale, t), nil
}

// resolveMoment parses the date-like value and shifts it into the effective
// zone: the payload zone wins, then the request zone, then the moment's own.
func resolveMoment(ctx Context, value any) (time.Time, error) {
	t, zone, err := dateInput(value)
	if err != nil {
		return time.Time{}, err
	}
	if effective := effectiveZone(zone, ctx); effective != nil {
		t = t.In(effective)
	}
	return t, nil
}

// FormatDuration humanizes a millisecond count. Accepted payload:
// {value: ms, precision?: int, units?: [names], round?: bool} or a bare number.
func FormatDuration(ctx Context, value any) (string, error) {
	opts := culture.DurationOptions{}
	raw := value
	if payload, ok := value.(map[string]any); ok {
		raw = payload["value"]
		if precision, ok := asInt(payload["precision"]); ok {
			opts.Precision = precision
		}
		opts.Units = asStrings(payload["units"])
		if round, ok := payload["round"].(bool); ok {
			opts.Round = round
		}
	}
	ms, ok := asFloat(raw)
	if !ok {
		return "", ErrDurationValueRequired
	}
	return ctx.cultures().FormatDuration(ctx.Locale, ms, opts), nil
}

// FormatCurrency renders a monetary amount. The payload must name an ISO 4217
// currency code; a missing code is an error the engine surfaces on the node.
func FormatCurrency(ctx Context, value any) (string, error) {
	payload, ok := value.(map[string]any)
	if !ok {
		return "", ErrCurrencyCodeRequired
	}
	code, _ := payload["currency"].(string)
	if code == "" {
		return "", ErrCurrencyCodeRequired
	}
	amount, ok := asFloat(payload["value"])
	if !ok {
		return "", ErrCurrencyValueRequired
	}
	precision := -1
	if p, ok := asInt(payload["precision"]); ok {
		precision = p
	}
	return ctx.cultures().FormatCurrency(ctx.Locale, amount, code, precision)
}
