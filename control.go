package daikinhttp

import (
	"context"
	"fmt"
)

// requiredControlKeys are sent on every write; set_control_info rejects partial updates.
var requiredControlKeys = []string{"pow", "mode", "stemp", "shum", "f_rate", "f_dir"}

// ControlSettings describes a control write. Nil fields keep the appliance's current value.
type ControlSettings struct {
	Power          *bool
	Mode           *int
	TargetTemp     *float64
	TargetHumidity *float64
	FanRate        *string
	FanDir         *string

	// ClearTargetHumidity writes the "no value" sentinel for shum.
	ClearTargetHumidity bool

	// Extra wire keys sent as-is, e.g. "adv" or "f_dir_ud".
	Extra map[string]string
}

// IsEmpty reports whether s changes nothing.
func (s ControlSettings) IsEmpty() bool {
	return s.Power == nil && s.Mode == nil && s.TargetTemp == nil && s.TargetHumidity == nil &&
		s.FanRate == nil && s.FanDir == nil && !s.ClearTargetHumidity && len(s.Extra) == 0
}

func (s ControlSettings) fields() Fields {
	f := make(Fields)
	for k, v := range s.Extra {
		f[k] = v
	}
	if s.Power != nil {
		f["pow"] = *s.Power
	}
	if s.Mode != nil {
		f["mode"] = *s.Mode
	}
	if s.TargetTemp != nil {
		f["stemp"] = s.TargetTemp
	}
	if s.TargetHumidity != nil {
		f["shum"] = s.TargetHumidity
	} else if s.ClearTargetHumidity {
		f["shum"] = (*float64)(nil)
	}
	if s.FanRate != nil {
		f["f_rate"] = *s.FanRate
	}
	if s.FanDir != nil {
		f["f_dir"] = *s.FanDir
	}
	return f
}

// Format renders the settings as wire parameters using the control schema.
func (s ControlSettings) Format() RawRecord {
	return controlInfoSchema.Format(s.fields())
}

// MergeControlParams builds the write parameters: the required keys from current,
// overlaid with every key in changes. Neither input is modified.
func MergeControlParams(current, changes RawRecord) RawRecord {
	merged := make(RawRecord, len(requiredControlKeys)+len(changes))
	for _, key := range requiredControlKeys {
		if v, ok := current[key]; ok {
			merged[key] = v
		}
	}
	for key, v := range changes {
		merged[key] = v
	}
	return merged
}

// SetControlInfo reads the current control state, applies settings on top of it
// and writes the complete parameter set back. Nothing is written if the read fails.
func (c *Client) SetControlInfo(ctx context.Context, settings ControlSettings) error {
	changes := settings.Format()

	current, err := c.GetRawControlInfo(ctx)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}

	params := MergeControlParams(current, changes)
	c.logger.Info("Setting device parameters", "params", params)

	if _, err := c.get(ctx, pathSetControlInfo, params); err != nil {
		return fmt.Errorf("failed to set control info: %w", err)
	}
	return nil
}

func Bool(v bool) *bool       { return &v }
func Int(v int) *int          { return &v }
func String(v string) *string { return &v }
