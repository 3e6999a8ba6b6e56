package builtin

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/todo-cli/td/internal/command"
	"github.com/todo-cli/td/internal/config"
)

// settableKeys are the keys accepted by "config set".
var settableKeys = []string{
	config.KeyAADAppID,
	config.KeyTenant,
	config.KeyTelemetryDisabled,
	config.KeyTelemetryEndpoint,
	config.KeyLogLevel,
	config.KeyLogFile,
	config.KeyLogJSON,
	config.KeyHelpDocsDir,
}

// settableKey returns the canonical spelling of key. Keys match
// case-insensitively, like viper's.
func settableKey(key string) (string, bool) {
	i := slices.IndexFunc(settableKeys, func(k string) bool { return strings.EqualFold(k, key) })
	if i < 0 {
		return "", false
	}
	return settableKeys[i], true
}

func validateConfigSet(args *command.Args) string {
	key := args.String("key")
	if _, ok := settableKey(key); !ok {
		return fmt.Sprintf("%s is not a valid setting. Allowed values: %s", key, strings.Join(settableKeys, ", "))
	}
	return ""
}

func (c *Commands) configGet(ctx context.Context, env *command.Env, args *command.Args, done *command.Completion) {
	key := args.String("key")
	value := config.Get(key)
	if wantsJSON(args) {
		done.Done(writeJSON(env.Out, config.KeyValue{Key: key, Value: value}))
		return
	}
	fmt.Fprintln(env.Out, value)
	done.Done(nil)
}

func (c *Commands) configSet(ctx context.Context, env *command.Env, args *command.Args, done *command.Completion) {
	key, value := args.String("key"), args.String("value")
	if canonical, ok := settableKey(key); ok {
		key = canonical
	}
	if err := config.Set(key, value); err != nil {
		done.Done(fmt.Errorf("setting config key %q: %w", key, err))
		return
	}
	env.Log.WithField("key", key).Debug("config value written")
	fmt.Fprintf(env.Out, "Set %s = %s\n", key, value)
	done.Done(nil)
}

func (c *Commands) configList(ctx context.Context, env *command.Env, args *command.Args, done *command.Completion) {
	all := config.All()
	if wantsJSON(args) {
		done.Done(writeJSON(env.Out, all))
		return
	}
	for _, kv := range all {
		fmt.Fprintf(env.Out, "%s = %s\n", kv.Key, kv.Value)
	}
	done.Done(nil)
}
