package resolve

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type failingProperties struct{}

func (failingProperties) Property(string) (Value, error) {
	return None(), errors.New("boom")
}

func constDefault(s string, calls *int) DefaultFunc {
	return func() (string, error) {
		*calls++
		return s, nil
	}
}

func TestResolve_EnvWinsVerbatim(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	env := MapEnv{"BUILD_ABI": "  x86_64 "}
	props := MapProperties{"buildABI": "armeabi-v7a"}
	calls := 0

	// --- Act ---
	v, src, err := Resolve(env, props, "BUILD_ABI", "buildABI", constDefault("arm64-v8a", &calls))

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "  x86_64 ", v, "env value must not be trimmed")
	require.Equal(t, SourceEnv, src)
	require.Zero(t, calls, "default must not run when env is set")
}

func TestResolve_BlankEnvFallsThrough(t *testing.T) {
	t.Parallel()

	for _, blank := range []string{"", " ", "\t\n"} {
		env := MapEnv{"BUILD_ABI": blank}
		props := MapProperties{"buildABI": "x86"}
		calls := 0

		v, src, err := Resolve(env, props, "BUILD_ABI", "buildABI", constDefault("arm64-v8a", &calls))

		require.NoError(t, err)
		require.Equal(t, "x86", v)
		require.Equal(t, SourceProperty, src)
		require.Zero(t, calls)
	}
}

func TestResolve_PropertyReturnedVerbatim(t *testing.T) {
	t.Parallel()

	props := MapProperties{"ciName": " "}
	calls := 0

	v, src, err := Resolve(MapEnv{}, props, "CI_NAME", "ciName", constDefault("x", &calls))

	require.NoError(t, err)
	require.Equal(t, " ", v, "a present property is used even when blank")
	require.Equal(t, SourceProperty, src)
}

func TestResolve_DefaultWhenAbsent(t *testing.T) {
	t.Parallel()

	calls := 0
	v, src, err := Resolve(MapEnv{}, NoProperties{}, "BUILD_ABI", "buildABI", constDefault("arm64-v8a", &calls))

	require.NoError(t, err)
	require.Equal(t, "arm64-v8a", v)
	require.Equal(t, SourceDefault, src)
	require.Equal(t, 1, calls)
}

func TestResolve_PropertyErrorTreatedAsAbsent(t *testing.T) {
	t.Parallel()

	calls := 0
	v, src, err := Resolve(MapEnv{}, failingProperties{}, "BUILD_ABI", "buildABI", constDefault("arm64-v8a", &calls))

	require.NoError(t, err)
	require.Equal(t, "arm64-v8a", v)
	require.Equal(t, SourceDefault, src)
}

func TestResolve_NilPropertiesUsesDefault(t *testing.T) {
	t.Parallel()

	calls := 0
	v, _, err := Resolve(MapEnv{}, nil, "BUILD_ABI", "buildABI", constDefault("d", &calls))

	require.NoError(t, err)
	require.Equal(t, "d", v)
}

func TestResolve_DefaultErrorPropagates(t *testing.T) {
	t.Parallel()

	want := errors.New("git missing")
	_, src, err := Resolve(MapEnv{}, NoProperties{}, "BUILD_COMMIT_HASH", "buildCommitHash", func() (string, error) {
		return "", want
	})

	require.ErrorIs(t, err, want)
	require.Equal(t, SourceDefault, src)
}

func TestResolve_EmptyNamePanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		_, _, _ = Resolve(MapEnv{}, NoProperties{}, "", "buildABI", func() (string, error) { return "", nil })
	})
}

func TestValue(t *testing.T) {
	t.Parallel()

	s, ok := Some("").Get()
	require.True(t, ok)
	require.Equal(t, "", s)

	require.False(t, None().Present())
	require.False(t, Value{}.Present())
}

func TestSourceString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "env", SourceEnv.String())
	require.Equal(t, "property", SourceProperty.String())
	require.Equal(t, "default", SourceDefault.String())
	require.Equal(t, "unknown", Source(42).String())
}
