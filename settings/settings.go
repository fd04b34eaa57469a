package settings

import (
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"dbwd/bus"
	"dbwd/params"
	"dbwd/utils"
)

var (
	Settings = DbwSettings{}
)

// DbwSettings is loaded once at startup and treated as immutable while the
// daemon runs; the only mutation paths are the explicit reload and log-level
// inputs on the dbwIn channel.
type DbwSettings struct {
	VehicleMassKg   float64 `json:"vehicle_mass_kg"`
	FuelCapacityGal float64 `json:"fuel_capacity_gal"`
	BrakeDeadband   float64 `json:"brake_deadband"`
	DecelLimit      float64 `json:"decel_limit"`
	AccelLimit      float64 `json:"accel_limit"`
	WheelRadiusM    float64 `json:"wheel_radius_m"`
	WheelBaseM      float64 `json:"wheel_base_m"`
	SteerRatio      float64 `json:"steer_ratio"`
	MaxLatAccel     float64 `json:"max_lat_accel"`
	MaxSteerAngle   float64 `json:"max_steer_angle"`
	MinSpeedMS      float64 `json:"min_speed_ms"`
	TickRateHz      float64 `json:"tick_rate_hz"`

	// YawSign is multiplied into the yaw extracted from the current
	// orientation before the path is rotated into the vehicle frame. The
	// deviation estimate only comes out right with the sign inverted; whether
	// that corrects a frame convention or compensates an error elsewhere in
	// the pipeline has not been verified, so the flip stays a named, testable
	// setting rather than a constant buried in the math.
	YawSign float64 `json:"yaw_sign"`

	// CanInterface, when set (e.g. "can0"), mirrors actuation commands onto
	// the named socketcan interface.
	CanInterface string `json:"can_interface"`
	LogLevel     string `json:"log_level"`
}

func (s *DbwSettings) Default() {
	s.VehicleMassKg = 1736.35
	s.FuelCapacityGal = 13.5
	s.BrakeDeadband = 0.1
	s.DecelLimit = -5
	s.AccelLimit = 1
	s.WheelRadiusM = 0.2413
	s.WheelBaseM = 2.8498
	s.SteerRatio = 14.8
	s.MaxLatAccel = 3
	s.MaxSteerAngle = 8
	s.MinSpeedMS = 10
	s.TickRateHz = 10
	s.YawSign = -1
	s.CanInterface = ""
	s.LogLevel = "error"
}

// TickPeriod is the control loop period derived from the configured rate.
func (s *DbwSettings) TickPeriod() time.Duration {
	rate := s.TickRateHz
	if rate <= 0 {
		rate = 10
	}
	return time.Duration(float64(time.Second) / rate)
}

func (s *DbwSettings) Load() (success bool) {
	s.Default() // set defaults so settings not already in param are defaulted
	data, err := params.GetParam(params.DBW_SETTINGS)
	if err != nil {
		utils.Loge(err)
		return false
	}

	err = json.Unmarshal(data, s)
	if err != nil {
		utils.Loge(err)
		return false
	}

	s.setLogLevel()

	return true
}

func (s *DbwSettings) LoadWithRetries(tries int) {
	for range tries {
		if s.Load() {
			break
		}
		time.Sleep(1 * time.Second)
	}
	s.Save()
}

func (s *DbwSettings) Save() {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		utils.Loge(err)
		return
	}
	err = params.PutParam(params.DBW_SETTINGS, data)
	if err != nil {
		utils.Loge(err)
		return
	}
}

func (s *DbwSettings) Unmarshal(data []byte) {
	utils.Logde(json.Unmarshal(data, s))
}

func (s *DbwSettings) setLogLevel() {
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		slog.SetLogLoggerLevel(slog.LevelDebug)
	case "info":
		slog.SetLogLoggerLevel(slog.LevelInfo)
	case "warn":
		slog.SetLogLoggerLevel(slog.LevelWarn)
	case "error":
		slog.SetLogLoggerLevel(slog.LevelError)
	default:
		slog.SetLogLoggerLevel(slog.LevelError)
	}
}

// Handle applies a control input received on the dbwIn channel.
func (s *DbwSettings) Handle(input bus.DbwInput) {
	switch input.Type {
	case bus.InputReloadSettings:
		s.Load()
	case bus.InputSaveSettings:
		go s.Save()
	case bus.InputSetLogLevel:
		s.LogLevel = input.Str
		s.setLogLevel()
	}
}
