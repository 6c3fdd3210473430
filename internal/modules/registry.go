package modules

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-viper/mapstructure/v2"

	"github.com/Veraticus/powerline/internal/config"
	"github.com/Veraticus/powerline/internal/powerline"
)

var (
	// ErrUnknownModule is returned for a segment type with no factory.
	ErrUnknownModule = errors.New("unknown module")
	// ErrInvalidOptions is returned when a segment's options don't decode.
	ErrInvalidOptions = errors.New("invalid module options")
)

// Factory builds a producer from its config options.
type Factory func(env *Env, opts map[string]any) (powerline.Module, error)

// Registry maps segment type tags to factories.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns a registry holding every builtin producer.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}
	r.Register("small_spacer", newSpacer(false))
	r.Register("large_spacer", newSpacer(true))
	r.Register("separator", newSeparator)
	r.Register("padding", newPadding)
	r.Register("cwd", newCwd)
	r.Register("short_cwd", newShortCwd)
	r.Register("read_only", newReadOnly)
	r.Register("git", newGit)
	r.Register("python_env", newPythonEnv)
	r.Register("nvm", newNvm)
	r.Register("cargo", newCargo)
	r.Register("sdkman_java", newSdkmanJava)
	r.Register("host", newHost)
	r.Register("user", newUser)
	r.Register("shell_name", newShellName)
	r.Register("time", newTime)
	r.Register("cmd", newCmd)
	r.Register("exit_code", newExitCode)
	r.Register("last_cmd_duration", newLastCmdDuration)
	return r
}

// Register adds or replaces the factory for tag.
func (r *Registry) Register(tag string, f Factory) {
	r.factories[tag] = f
}

// Tags returns the registered tags in sorted order.
func (r *Registry) Tags() []string {
	tags := make([]string, 0, len(r.factories))
	for tag := range r.factories {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Build creates the producer for one configured segment.
func (r *Registry) Build(env *Env, seg config.Segment) (powerline.Module, error) {
	f, ok := r.factories[seg.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModule, seg.Type)
	}
	m, err := f(env, seg.Options)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", seg.Type, err)
	}
	return m, nil
}

// decodeOptions decodes a segment's options into out. Unknown keys are an
// error so typos in the config surface instead of being ignored.
func decodeOptions(opts map[string]any, out any) error {
	if len(opts) == 0 {
		return nil
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("create decoder: %w", err)
	}
	if err := decoder.Decode(opts); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	return nil
}

// noOptions rejects any option for producers that take none.
func noOptions(opts map[string]any) error {
	var none struct{}
	return decodeOptions(opts, &none)
}
