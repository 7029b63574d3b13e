package daikinhttp

import (
	"net/url"
	"strings"
)

var generalInfoSchema = Schema{
	KindInt:  {"err", "location", "icon", "port", "adp_kind", "pv", "cpv", "cpv_minor"},
	KindBool: {"pow", "led", "en_hol"},
}

var sensorInfoSchema = Schema{
	KindInt:         {"err", "cmpfreq", "mompow"},
	KindTemperature: {"htemp", "otemp", "hhum"},
}

// controlInfoSchema is used to parse reads and to format writes.
var controlInfoSchema = Schema{
	KindInt:         {"mode", "alert", "b_mode"},
	KindTemperature: {"shum", "stemp", "b_shum"},
	KindBool:        {"pow"},
}

// GeneralInfo is the answer of common/basic_info.
type GeneralInfo struct {
	Type            string `json:"type"`
	Region          string `json:"region"`
	Name            string `json:"name"`
	MAC             string `json:"mac"`
	Version         string `json:"version"`
	Method          string `json:"method"`
	Adapter         string `json:"adapter_mode"`
	Power           bool   `json:"power"`
	LED             bool   `json:"led"`
	Holiday         bool   `json:"holiday"`
	Error           int    `json:"error"`
	Location        int    `json:"location"`
	Icon            int    `json:"icon"`
	Port            int    `json:"port"`
	AdapterKind     int    `json:"adapter_kind"`
	ProtocolVersion int    `json:"protocol_version"`
	FirmwareMinor   int    `json:"firmware_minor"`

	Raw RawRecord `json:"raw"`
}

// FormattedMAC renders a 12 digit MAC as colon separated pairs.
func (g GeneralInfo) FormattedMAC() string {
	return formatMAC(g.MAC)
}

// SensorInfo is the answer of aircon/get_sensor_info.
type SensorInfo struct {
	InsideTemp          *float64 `json:"inside_temp"`
	OutsideTemp         *float64 `json:"outside_temp"`
	InsideHumidity      *float64 `json:"inside_humidity"`
	Error               int      `json:"error"`
	CompressorFrequency int      `json:"compressor_frequency"`
	Power               int      `json:"power_consumption"`

	Raw RawRecord `json:"raw"`
}

// ControlInfo is the answer of aircon/get_control_info.
type ControlInfo struct {
	Power          bool     `json:"power"`
	Mode           int      `json:"mode"`
	TargetTemp     *float64 `json:"target_temp"`
	TargetHumidity *float64 `json:"target_humidity"`
	FanRate        string   `json:"fan_rate"`
	FanDir         string   `json:"fan_dir"`
	Alert          int      `json:"alert"`

	BackupMode           int      `json:"backup_mode"`
	BackupTargetHumidity *float64 `json:"backup_target_humidity"`

	Raw RawRecord `json:"raw"`
}

func ParseGeneralInfo(raw RawRecord) GeneralInfo {
	f := generalInfoSchema.Parse(raw)
	return GeneralInfo{
		Type:            f.String("type"),
		Region:          f.String("reg"),
		Name:            decodeName(f.String("name")),
		MAC:             f.String("mac"),
		Version:         f.String("ver"),
		Method:          f.String("method"),
		Adapter:         f.String("adp_mode"),
		Power:           f.Bool("pow"),
		LED:             f.Bool("led"),
		Holiday:         f.Bool("en_hol"),
		Error:           f.Int("err"),
		Location:        f.Int("location"),
		Icon:            f.Int("icon"),
		Port:            f.Int("port"),
		AdapterKind:     f.Int("adp_kind"),
		ProtocolVersion: f.Int("pv"),
		FirmwareMinor:   f.Int("cpv_minor"),
		Raw:             raw.Clone(),
	}
}

// decodeName undoes the second layer of encoding the appliance puts on the name.
func decodeName(name string) string {
	decoded, err := url.PathUnescape(name)
	if err != nil {
		return name
	}
	return decoded
}

func ParseSensorInfo(raw RawRecord) SensorInfo {
	f := sensorInfoSchema.Parse(raw)
	return SensorInfo{
		InsideTemp:          f.Temperature("htemp"),
		OutsideTemp:         f.Temperature("otemp"),
		InsideHumidity:      f.Temperature("hhum"),
		Error:               f.Int("err"),
		CompressorFrequency: f.Int("cmpfreq"),
		Power:               f.Int("mompow"),
		Raw:                 raw.Clone(),
	}
}

func ParseControlInfo(raw RawRecord) ControlInfo {
	f := controlInfoSchema.Parse(raw)
	return ControlInfo{
		Power:                f.Bool("pow"),
		Mode:                 f.Int("mode"),
		TargetTemp:           f.Temperature("stemp"),
		TargetHumidity:       f.Temperature("shum"),
		FanRate:              f.String("f_rate"),
		FanDir:               f.String("f_dir"),
		Alert:                f.Int("alert"),
		BackupMode:           f.Int("b_mode"),
		BackupTargetHumidity: f.Temperature("b_shum"),
		Raw:                  raw.Clone(),
	}
}

func formatMAC(mac string) string {
	if len(mac) != 12 {
		return mac
	}

	var b strings.Builder
	for i := 0; i < len(mac); i += 2 {
		if i > 0 {
			b.WriteByte(':')
		}
		b.WriteString(mac[i : i+2])
	}
	return b.String()
}
