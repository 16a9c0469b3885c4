package config

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

type mode string

type queueConfig struct {
	Mode           mode
	UnknownControl string
	Capacity       int
	FlushInterval  time.Duration
}

type retryConfig struct {
	Attempts int
	Backoff  time.Duration
}

type nestedConfig struct {
	Name    string
	Retry   retryConfig
	Verbose bool
}

type common struct {
	Name  string
	Debug bool
}

type embeddedConfig struct {
	common
	Limit int
}

type allTypesConfig struct {
	S   string
	B   bool
	I   int
	I8  int8
	I16 int16
	I32 int32
	I64 int64
	U   uint
	U8  uint8
	U16 uint16
	U32 uint32
	U64 uint64
	F32 float32
	F64 float64
	D   time.Duration
}

type skippedConfig struct {
	Name      string
	Predicate func(int) bool
	Params    map[string]any
	Logger    interface{ Info(string, ...any) }
	Next      *skippedConfig
	limit     int
}

type level int

func (l *level) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "low":
		*l = 1
	case "high":
		*l = 2
	default:
		return fmt.Errorf("unknown level %q", b)
	}
	return nil
}

type textConfig struct {
	Level level
}

func TestLoad_Flat(t *testing.T) {
	l := Loader{lookup: envMap(map[string]string{
		"PIPES_QUEUE_MODE":            "sort",
		"PIPES_QUEUE_UNKNOWN_CONTROL": "forward",
		"PIPES_QUEUE_CAPACITY":        "128",
		"PIPES_QUEUE_FLUSH_INTERVAL":  "250ms",
	})}

	var cfg queueConfig
	require.NoError(t, l.Load("queue", &cfg))

	assert.Equal(t, queueConfig{
		Mode:           "sort",
		UnknownControl: "forward",
		Capacity:       128,
		FlushInterval:  250 * time.Millisecond,
	}, cfg)
}

func TestLoad_NestedStruct(t *testing.T) {
	l := Loader{lookup: envMap(map[string]string{
		"PIPES_JUNCTION_NAME":           "orders",
		"PIPES_JUNCTION_RETRY_ATTEMPTS": "3",
		"PIPES_JUNCTION_RETRY_BACKOFF":  "2s",
		"PIPES_JUNCTION_VERBOSE":        "true",
	})}

	var cfg nestedConfig
	require.NoError(t, l.Load("junction", &cfg))

	assert.Equal(t, "orders", cfg.Name)
	assert.Equal(t, 3, cfg.Retry.Attempts)
	assert.Equal(t, 2*time.Second, cfg.Retry.Backoff)
	assert.True(t, cfg.Verbose)
}

func TestLoad_EmbeddedStruct(t *testing.T) {
	l := Loader{lookup: envMap(map[string]string{
		"PIPES_SCALE_NAME":  "scale",
		"PIPES_SCALE_DEBUG": "1",
		"PIPES_SCALE_LIMIT": "10",
	})}

	var cfg embeddedConfig
	require.NoError(t, l.Load("scale", &cfg))

	assert.Equal(t, "scale", cfg.Name)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 10, cfg.Limit)
}

func TestLoad_AllTypes(t *testing.T) {
	l := Loader{lookup: envMap(map[string]string{
		"PIPES_TYPES_S":   "hello",
		"PIPES_TYPES_B":   "true",
		"PIPES_TYPES_I":   "-42",
		"PIPES_TYPES_I8":  "-8",
		"PIPES_TYPES_I16": "-16",
		"PIPES_TYPES_I32": "-32",
		"PIPES_TYPES_I64": "-64",
		"PIPES_TYPES_U":   "42",
		"PIPES_TYPES_U8":  "8",
		"PIPES_TYPES_U16": "16",
		"PIPES_TYPES_U32": "32",
		"PIPES_TYPES_U64": "64",
		"PIPES_TYPES_F32": "3.14",
		"PIPES_TYPES_F64": "2.718",
		"PIPES_TYPES_D":   "500ms",
	})}

	var cfg allTypesConfig
	require.NoError(t, l.Load("types", &cfg))

	assert.Equal(t, allTypesConfig{
		S: "hello", B: true,
		I: -42, I8: -8, I16: -16, I32: -32, I64: -64,
		U: 42, U8: 8, U16: 16, U32: 32, U64: 64,
		F32: 3.14, F64: 2.718,
		D: 500 * time.Millisecond,
	}, cfg)
}

func TestLoad_TextUnmarshaler(t *testing.T) {
	l := Loader{lookup: envMap(map[string]string{"PIPES_STAGE_LEVEL": "High"})}

	var cfg textConfig
	require.NoError(t, l.Load("stage", &cfg))
	assert.Equal(t, level(2), cfg.Level)

	l = Loader{lookup: envMap(map[string]string{"PIPES_STAGE_LEVEL": "medium"})}
	err := l.Load("stage", &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PIPES_STAGE_LEVEL")
}

func TestLoad_CustomPrefix(t *testing.T) {
	l := Loader{
		Prefix: "MYAPP",
		lookup: envMap(map[string]string{"MYAPP_QUEUE_CAPACITY": "12"}),
	}

	var cfg queueConfig
	require.NoError(t, l.Load("queue", &cfg))
	assert.Equal(t, 12, cfg.Capacity)
}

func TestLoad_StageNormalization(t *testing.T) {
	tests := []struct {
		stage string
		key   string
	}{
		{"order-queue", "PIPES_ORDER_QUEUE_CAPACITY"},
		{"My Stage", "PIPES_MY_STAGE_CAPACITY"},
		{"UPPER", "PIPES_UPPER_CAPACITY"},
		{"with_underscore", "PIPES_WITH_UNDERSCORE_CAPACITY"},
		{"mixed-Case_Name", "PIPES_MIXED_CASE_NAME_CAPACITY"},
		{"dots.dropped", "PIPES_DOTSDROPPED_CAPACITY"},
	}
	for _, tt := range tests {
		t.Run(tt.stage, func(t *testing.T) {
			l := Loader{lookup: envMap(map[string]string{tt.key: "7"})}

			var cfg queueConfig
			require.NoError(t, l.Load(tt.stage, &cfg))
			assert.Equal(t, 7, cfg.Capacity, "key %s", tt.key)
		})
	}
}

func TestLoad_PreservesDefaults(t *testing.T) {
	l := Loader{lookup: envMap(map[string]string{"PIPES_QUEUE_CAPACITY": "5"})}

	cfg := queueConfig{Mode: "fifo", FlushInterval: time.Second}
	require.NoError(t, l.Load("queue", &cfg))

	assert.Equal(t, 5, cfg.Capacity)
	assert.Equal(t, mode("fifo"), cfg.Mode)
	assert.Equal(t, time.Second, cfg.FlushInterval)
}

func TestLoad_SkipsUnsupportedFields(t *testing.T) {
	l := Loader{lookup: envMap(map[string]string{
		"PIPES_STAGE_NAME":      "x",
		"PIPES_STAGE_PREDICATE": "ignored",
		"PIPES_STAGE_PARAMS":    "ignored",
		"PIPES_STAGE_LIMIT":     "9",
	})}

	var cfg skippedConfig
	require.NoError(t, l.Load("stage", &cfg))

	assert.Equal(t, "x", cfg.Name)
	assert.Nil(t, cfg.Predicate)
	assert.Nil(t, cfg.Params)
	assert.Zero(t, cfg.limit)
}

func TestLoad_ParseErrors(t *testing.T) {
	tests := []struct {
		name string
		key  string
		raw  string
	}{
		{"int", "PIPES_QUEUE_CAPACITY", "not_a_number"},
		{"duration", "PIPES_QUEUE_FLUSH_INTERVAL", "bad"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Loader{lookup: envMap(map[string]string{tt.key: tt.raw})}

			var cfg queueConfig
			err := l.Load("queue", &cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoad_Overflow(t *testing.T) {
	l := Loader{lookup: envMap(map[string]string{"PIPES_TYPES_I8": "300"})}

	var cfg allTypesConfig
	assert.Error(t, l.Load("types", &cfg))
}

func TestLoad_InvalidTarget(t *testing.T) {
	var cfg queueConfig
	var nilCfg *queueConfig
	n := 3

	for _, dst := range []any{cfg, nilCfg, &n, nil} {
		assert.ErrorIs(t, Loader{}.Load("queue", dst), ErrInvalidTarget)
	}
}

func TestKeys(t *testing.T) {
	assert.Equal(t, []string{
		"PIPES_JUNCTION_NAME",
		"PIPES_JUNCTION_RETRY_ATTEMPTS",
		"PIPES_JUNCTION_RETRY_BACKOFF",
		"PIPES_JUNCTION_VERBOSE",
	}, Keys("junction", nestedConfig{}))

	assert.Equal(t, []string{
		"PIPES_SCALE_NAME",
		"PIPES_SCALE_DEBUG",
		"PIPES_SCALE_LIMIT",
	}, Keys("scale", &embeddedConfig{}))

	assert.Equal(t, []string{"PIPES_STAGE_NAME"}, Keys("stage", skippedConfig{}))
	assert.Nil(t, Keys("stage", 42))
	assert.Nil(t, Keys("stage", nil))
}

func TestToUpperSnake(t *testing.T) {
	tests := map[string]string{
		"Mode":           "MODE",
		"UnknownControl": "UNKNOWN_CONTROL",
		"FlushInterval":  "FLUSH_INTERVAL",
		"HTTPAddr":       "HTTP_ADDR",
		"URLPath":        "URL_PATH",
		"Retry2Times":    "RETRY2_TIMES",
		"ID":             "ID",
	}
	for in, want := range tests {
		assert.Equal(t, want, toUpperSnake(in), in)
	}
}
