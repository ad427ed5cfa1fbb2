package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	_ "time/tzdata"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/helper/pkg/password"
	"github.com/dmitrymomot/helper/pkg/timezone"
)

func testConfig() Config {
	return Config{
		Env:            "development",
		ServiceName:    "helper-test",
		PasswordLength: 16,
		OutputFormat:   formatText,
	}
}

// lowestApp generates with a source that always draws the minimum, so
// passwords are the unshuffled candidate.
func lowestApp(cfg Config) *app {
	a := newApp(cfg)
	a.gen = password.New(password.WithSource(password.RandomFunc(func(min, _ int) int { return min })))
	return a
}

func execute(t *testing.T, a *app, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(a)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestPasswordCommand(t *testing.T) {
	t.Parallel()

	t.Run("default length from config", func(t *testing.T) {
		t.Parallel()

		out, _, err := execute(t, newApp(testConfig()), "password")
		require.NoError(t, err)

		got := lines(out)
		require.Len(t, got, 1)
		assert.Len(t, got[0], 16)
		assert.True(t, password.Valid(got[0]), got[0])
	})

	t.Run("length and count flags", func(t *testing.T) {
		t.Parallel()

		out, _, err := execute(t, lowestApp(testConfig()), "password", "--length", "4", "-n", "3")
		require.NoError(t, err)
		assert.Equal(t, []string{"aA0!", "aA0!", "aA0!"}, lines(out))
	})

	t.Run("json output", func(t *testing.T) {
		t.Parallel()

		out, _, err := execute(t, lowestApp(testConfig()), "password", "-l", "6", "-n", "2", "--format", "json")
		require.NoError(t, err)

		var got []string
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, []string{"aA0!aa", "aA0!aa"}, got)
	})

	t.Run("too short", func(t *testing.T) {
		t.Parallel()

		out, _, err := execute(t, newApp(testConfig()), "password", "--length", "3")
		require.Error(t, err)
		assert.ErrorIs(t, err, password.ErrInvalidArgument)
		assert.Equal(t, "Password length must be at least '4' characters.", err.Error())
		assert.Empty(t, out)
	})

	t.Run("length above the maximum", func(t *testing.T) {
		t.Parallel()

		out, _, err := execute(t, newApp(testConfig()), "password", "--length", "4097")
		assert.ErrorIs(t, err, errLengthTooLong)
		assert.Empty(t, out)

		out, _, err = execute(t, lowestApp(testConfig()), "password", "--length", "4096")
		require.NoError(t, err)
		assert.Len(t, lines(out)[0], maxLength)
	})

	t.Run("invalid count", func(t *testing.T) {
		t.Parallel()

		_, _, err := execute(t, newApp(testConfig()), "password", "--count", "0")
		require.Error(t, err)
	})

	t.Run("unsupported format", func(t *testing.T) {
		t.Parallel()

		_, _, err := execute(t, newApp(testConfig()), "password", "--format", "xml")
		assert.ErrorIs(t, err, errUnsupportedFormat)
	})

	t.Run("password is never logged", func(t *testing.T) {
		t.Parallel()

		_, logs, err := execute(t, lowestApp(testConfig()), "password", "--length", "4")
		require.NoError(t, err)
		assert.Contains(t, logs, "passwords generated")
		assert.NotContains(t, logs, "aA0!")
	})
}

func TestPasswordCheckCommand(t *testing.T) {
	t.Parallel()

	t.Run("all valid", func(t *testing.T) {
		t.Parallel()

		out, _, err := execute(t, newApp(testConfig()), "password", "check", "aA0!", "Zz9?xyz")
		require.NoError(t, err)
		assert.Equal(t, []string{"ok\taA0!", "ok\tZz9?xyz"}, lines(out))
	})

	t.Run("weak password fails the command", func(t *testing.T) {
		t.Parallel()

		out, _, err := execute(t, newApp(testConfig()), "password", "check", "aA0!", "abc")
		require.Error(t, err)
		assert.ErrorIs(t, err, errWeakPassword)
		assert.Equal(t, []string{"ok\taA0!", "weak\tabc"}, lines(out))
	})

	t.Run("yaml output", func(t *testing.T) {
		t.Parallel()

		out, _, err := execute(t, newApp(testConfig()), "password", "check", "--format", "yaml", "aA0!")
		require.NoError(t, err)

		var got []checkResult
		require.NoError(t, yaml.Unmarshal([]byte(out), &got))
		assert.Equal(t, []checkResult{{Password: "aA0!", Valid: true}}, got)
	})

	t.Run("requires an argument", func(t *testing.T) {
		t.Parallel()

		_, _, err := execute(t, newApp(testConfig()), "password", "check")
		require.Error(t, err)
	})
}

func TestTimezonesCommand(t *testing.T) {
	t.Parallel()

	// None of these zones observe daylight saving time.
	zoneArgs := []string{"timezones", "--zone", "Asia/Tokyo", "--zone", "UTC", "--zone", "Pacific/Midway"}

	t.Run("text output sorted by offset", func(t *testing.T) {
		t.Parallel()

		out, _, err := execute(t, newApp(testConfig()), zoneArgs...)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"Pacific/Midway (UTC -11:00)",
			"UTC (UTC +00:00)",
			"Asia/Tokyo (UTC +09:00)",
		}, lines(out))
	})

	t.Run("yaml output", func(t *testing.T) {
		t.Parallel()

		out, _, err := execute(t, newApp(testConfig()), append(zoneArgs, "--format", "yaml")...)
		require.NoError(t, err)

		var got []timezone.Zone
		require.NoError(t, yaml.Unmarshal([]byte(out), &got))
		require.Len(t, got, 3)
		assert.Equal(t, timezone.Zone{ID: "Pacific/Midway", Name: "Pacific/Midway (UTC -11:00)", Offset: -39600}, got[0])
		assert.Equal(t, "UTC", got[1].ID)
		assert.Equal(t, 32400, got[2].Offset)
	})

	t.Run("json output uses config default", func(t *testing.T) {
		t.Parallel()

		cfg := testConfig()
		cfg.OutputFormat = formatJSON
		out, _, err := execute(t, newApp(cfg), zoneArgs...)
		require.NoError(t, err)

		var got []map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		require.Len(t, got, 3)
		assert.Equal(t, "Pacific/Midway", got[0]["timezone"])
		assert.Equal(t, "Asia/Tokyo (UTC +09:00)", got[2]["name"])
	})

	t.Run("logs the component and source", func(t *testing.T) {
		t.Parallel()

		_, logs, err := execute(t, newApp(testConfig()), zoneArgs...)
		require.NoError(t, err)
		assert.Contains(t, logs, "component=timezone")
		assert.Contains(t, logs, "source.identifiers=3")
	})

	t.Run("unknown zone", func(t *testing.T) {
		t.Parallel()

		out, _, err := execute(t, newApp(testConfig()), "timezones", "--zone", "Mars/Olympus_Mons")
		require.Error(t, err)
		assert.ErrorIs(t, err, timezone.ErrUnknownZone)
		assert.Equal(t, "Unknown time zone 'Mars/Olympus_Mons'.", err.Error())
		assert.Empty(t, out)
	})

	t.Run("missing zoneinfo directory", func(t *testing.T) {
		t.Parallel()

		_, _, err := execute(t, newApp(testConfig()), "timezones", "--zoneinfo", t.TempDir())
		assert.ErrorIs(t, err, timezone.ErrDatabaseNotFound)
	})
}

func TestCaseCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "snake", args: []string{"case", "snake", "dateOfMessage", "_fooBar"}, want: []string{"date_of_message", "foo_bar"}},
		{name: "camel", args: []string{"case", "camel", "date_of_birth", "plain"}, want: []string{"dateOfBirth", "plain"}},
		{name: "title", args: []string{"case", "title", "CREATED_AT", "dateOfMessage"}, want: []string{"Created At", "Date Of Message"}},
		{name: "turkish casing", args: []string{"case", "camel", "--lang", "tr", "user_id"}, want: []string{"userİd"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, _, err := execute(t, newApp(testConfig()), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, lines(out))
		})
	}

	t.Run("invalid language", func(t *testing.T) {
		t.Parallel()

		_, _, err := execute(t, newApp(testConfig()), "case", "snake", "--lang", "not a tag!", "fooBar")
		require.Error(t, err)
	})

	t.Run("requires a value", func(t *testing.T) {
		t.Parallel()

		_, _, err := execute(t, newApp(testConfig()), "case", "title")
		require.Error(t, err)
	})
}

func TestInvocationLogging(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Env = "production"
	_, logs, err := execute(t, lowestApp(cfg), "password", "-l", "4")
	require.NoError(t, err)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines(logs)[0]), &record))

	assert.Equal(t, "passwords generated", record["msg"])
	assert.Equal(t, "helper-test", record["service"])
	assert.Equal(t, "production", record["env"])
	assert.Equal(t, "password", record["command"])
	assert.Equal(t, "password", record["component"])
	assert.EqualValues(t, 4, record["length"])

	id, ok := record["invocation_id"].(string)
	require.True(t, ok, "invocation_id missing: %v", record)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)
}

func TestLogLevelOverride(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.LogLevel = "error"
	_, logs, err := execute(t, lowestApp(cfg), "password", "-l", "4")
	require.NoError(t, err)
	assert.Empty(t, logs)
}
