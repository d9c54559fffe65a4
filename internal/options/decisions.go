package options

// Derived decisions combine two or more raw settings into the effective
// behavior the rest of the checker acts on. Like the accessors they are
// total over a built record.

// TypeChecked reports whether component syntax is type-checked at this
// support level. TypeChecked implies Parsed.
//
// The switch is deliberately exhaustive with no default: a new variant
// must fail loudly here so every call site gets revisited.
func (c ComponentSyntax) TypeChecked() bool {
	switch c {
	case ComponentSyntaxOff:
		return false
	case ComponentSyntaxParseOnly:
		return false
	case ComponentSyntaxFull:
		return true
	}
	panic("options: unhandled ComponentSyntax variant")
}

// Parsed reports whether component syntax is accepted by the parser at
// this support level.
func (c ComponentSyntax) Parsed() bool {
	switch c {
	case ComponentSyntaxOff:
		return false
	case ComponentSyntaxParseOnly:
		return true
	case ComponentSyntaxFull:
		return true
	}
	panic("options: unhandled ComponentSyntax variant")
}

// ParseComponentSyntaxFlag reports whether the parser should accept
// component syntax at all under this record.
func (o *Options) ParseComponentSyntaxFlag() bool {
	return o.componentSyntax.Parsed()
}

// TypeCheckComponentSyntax reports whether component syntax in the file
// at path is type-checked: either the global level is full, or the
// file's path falls under a configured include prefix. An empty include
// list never widens the global decision.
//
// The prefix test is PathPrefixList.Matches — a raw string prefix after
// separator normalization, not segment-boundary matching.
func (o *Options) TypeCheckComponentSyntax(path string) bool {
	if o.componentSyntax.TypeChecked() {
		return true
	}
	return o.componentSyntaxIncludes.Matches(path)
}

// ShouldProfile reports whether profiling output is actually produced.
// Quiet mode unconditionally suppresses profiling; this is a
// conjunction, not a priority override.
func (o *Options) ShouldProfile() bool {
	return o.profile && !o.quiet
}

// Rollout returns the configured variant for the named rollout. ok is
// false when the rollout is not active; callers treating presence as
// opt-in must not distinguish an absent rollout from an off one.
func (o *Options) Rollout(name string) (string, bool) {
	v, ok := o.enabledRollouts[name]
	return v, ok
}

// EnabledRollouts returns the full rollout table. Iteration order is not
// significant.
func (o *Options) EnabledRollouts() map[string]string { return o.enabledRollouts }

// MapModuleName rewrites a required module name through the ordered
// mapper list. ok is false when no mapper matches and node/Haste
// resolution proceeds with the original name.
func (o *Options) MapModuleName(name string) (string, bool) {
	return o.moduleNameMappers.Resolve(name)
}

// GenerateMissingModule returns the generator for an unresolvable
// module name, if one is configured.
func (o *Options) GenerateMissingModule(name string) (string, bool) {
	return o.missingModuleGenerators.Resolve(name)
}

// ReduceHasteName reduces a file path to its Haste module name through
// the ordered reducer list.
func (o *Options) ReduceHasteName(path string) (string, bool) {
	return o.hasteNameReducers.Resolve(path)
}

// RelayModulePrefixFor returns the module prefix to prepend to Relay
// artifact imports from the file at path. ok is false when Relay
// integration is off, the file is excluded, no prefix is configured, or
// the prefix include patterns do not select the file. An empty include
// list applies the prefix everywhere.
func (o *Options) RelayModulePrefixFor(path string) (string, bool) {
	if !o.relayIntegration {
		return "", false
	}
	if o.relayIntegrationExcludes.Matches(path) {
		return "", false
	}
	if o.relayIntegrationModulePrefix == nil {
		return "", false
	}
	if len(o.relayIntegrationModulePrefixIncludes) > 0 &&
		!o.relayIntegrationModulePrefixIncludes.Matches(path) {
		return "", false
	}
	return *o.relayIntegrationModulePrefix, true
}
