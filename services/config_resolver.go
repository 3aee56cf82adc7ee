package services

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/7pessoal-source/noir-menu-v2/entity"
	"github.com/7pessoal-source/noir-menu-v2/pkg/money"
)

// ConfigSource is the tagged variant of the two backing representations.
// The settings table wins whenever it has at least one row; the legacy
// single-row table is the fallback; with neither, resolution yields nil
// and callers use the compiled-in defaults.
type ConfigSource struct {
	kind     sourceKind
	settings []entity.Setting
	legacy   *entity.MenuConfig
}

type sourceKind int

const (
	sourceAbsent sourceKind = iota
	sourceSettings
	sourceLegacy
)

func SettingsSource(rows []entity.Setting) ConfigSource {
	return ConfigSource{kind: sourceSettings, settings: rows}
}

func LegacySource(row *entity.MenuConfig) ConfigSource {
	return ConfigSource{kind: sourceLegacy, legacy: row}
}

func AbsentSource() ConfigSource {
	return ConfigSource{kind: sourceAbsent}
}

// PickSource applies the representation priority to the raw fetch results.
func PickSource(settings []entity.Setting, legacy *entity.MenuConfig) ConfigSource {
	if len(settings) > 0 {
		return SettingsSource(settings)
	}
	if legacy != nil {
		return LegacySource(legacy)
	}
	return AbsentSource()
}

// ResolveConfig builds one immutable RestaurantConfig from a source.
// now supplies the local weekday for schedule resolution; passing it in
// keeps resolution a pure function.
func ResolveConfig(src ConfigSource, now time.Time) *entity.RestaurantConfig {
	switch src.kind {
	case sourceSettings:
		return resolveSettings(src.settings, now)
	case sourceLegacy:
		return resolveLegacy(src.legacy, now)
	default:
		return nil
	}
}

func resolveSettings(rows []entity.Setting, now time.Time) *entity.RestaurantConfig {
	s := make(map[string]string, len(rows))
	for _, row := range rows {
		s[row.Key] = row.Value
	}

	today := daySchedule(s, now.Weekday())
	enabled := boolSetting(s, "orders.enabled", true)

	return &entity.RestaurantConfig{
		Source: entity.ConfigSourceSettings,

		Name:           strSetting(s, "general.name", ""),
		Tagline:        strSetting(s, "general.description", ""),
		WhatsappNumber: strSetting(s, "general.phone", ""),

		IsOpen:        enabled && !today.Closed,
		OpenTime:      today.Open,
		CloseTime:     today.Close,
		WorkingDays:   strSetting(s, "general.working_days", ""),
		ClosedMessage: strSetting(s, "general.closed_message", ""),
		EstimatedTime: strSetting(s, "delivery.estimated_time", ""),

		MinimumOrder:        moneySetting(s, "orders.minimum_value"),
		MinimumOrderEnabled: boolSetting(s, "orders.minimum_enabled", true),

		Neighborhoods: decodeNeighborhoods(s["delivery.neighborhoods"]),
	}
}

// resolveLegacy uses the legacy row verbatim: nil optional columns stay
// empty instead of being filled with defaults. The row has no per-day
// hours, so today's entry is the global default (never marked closed).
func resolveLegacy(row *entity.MenuConfig, now time.Time) *entity.RestaurantConfig {
	_ = now

	cfg := &entity.RestaurantConfig{
		Source: entity.ConfigSourceLegacy,

		WhatsappNumber: row.WhatsappNumber,

		IsOpen: row.IsOpen != nil && *row.IsOpen,

		MinimumOrder:        row.MinimumOrder,
		MinimumOrderEnabled: row.MinimumOrder.Cmp(money.Zero()) > 0,

		Neighborhoods: decodeNeighborhoods(row.Neighborhoods),
	}
	if row.RestaurantName != nil {
		cfg.Name = *row.RestaurantName
	}
	if row.Tagline != nil {
		cfg.Tagline = *row.Tagline
	}
	if row.OpenTime != nil {
		cfg.OpenTime = *row.OpenTime
	}
	if row.CloseTime != nil {
		cfg.CloseTime = *row.CloseTime
	}
	if row.WorkingDays != nil {
		cfg.WorkingDays = *row.WorkingDays
	}
	return cfg
}

func daySchedule(s map[string]string, weekday time.Weekday) entity.DaySchedule {
	raw, ok := s["hours."+entity.WeekdayKey(weekday)]
	if !ok {
		return entity.DefaultDaySchedule
	}
	var day entity.DaySchedule
	if err := json.Unmarshal([]byte(raw), &day); err != nil {
		return entity.DefaultDaySchedule
	}
	if day.Open == "" {
		day.Open = entity.DefaultDaySchedule.Open
	}
	if day.Close == "" {
		day.Close = entity.DefaultDaySchedule.Close
	}
	return day
}

func strSetting(s map[string]string, key, def string) string {
	raw, ok := s[key]
	if !ok {
		return def
	}
	var v string
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		// tolerate unquoted legacy values
		if t := strings.TrimSpace(raw); t != "" {
			return t
		}
		return def
	}
	return v
}

func boolSetting(s map[string]string, key string, def bool) bool {
	raw, ok := s[key]
	if !ok {
		return def
	}
	var v bool
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return def
	}
	return v
}

func moneySetting(s map[string]string, key string) money.Money {
	raw, ok := s[key]
	if !ok {
		return money.Zero()
	}
	var num json.Number
	if err := json.Unmarshal([]byte(raw), &num); err == nil {
		if m, err := money.Parse(num.String()); err == nil {
			return m
		}
	}
	var str string
	if err := json.Unmarshal([]byte(raw), &str); err == nil {
		if m, err := money.Parse(str); err == nil {
			return m
		}
	}
	return money.Zero()
}

// decodeNeighborhoods accepts both shapes the admin has stored over time:
// objects {id, name, delivery_fee} and bare name strings (fee 0).
func decodeNeighborhoods(raw string) []entity.Neighborhood {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var objs []struct {
		ID          string      `json:"id"`
		Name        string      `json:"name"`
		DeliveryFee json.Number `json:"delivery_fee"`
	}
	if err := json.Unmarshal([]byte(raw), &objs); err == nil {
		out := make([]entity.Neighborhood, 0, len(objs))
		for _, o := range objs {
			if o.Name == "" {
				continue
			}
			fee := money.Zero()
			if o.DeliveryFee != "" {
				if m, err := money.Parse(o.DeliveryFee.String()); err == nil && !m.IsNegative() {
					fee = m
				}
			}
			id := o.ID
			if id == "" {
				id = slugify(o.Name)
			}
			out = append(out, entity.Neighborhood{ID: id, Name: o.Name, DeliveryFee: fee})
		}
		return out
	}

	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err == nil {
		out := make([]entity.Neighborhood, 0, len(names))
		for _, name := range names {
			if name == "" {
				continue
			}
			out = append(out, entity.Neighborhood{ID: slugify(name), Name: name})
		}
		return out
	}
	return nil
}

func slugify(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
}
