package options

import "fmt"

// ModuleSystem selects how module names are resolved to files.
type ModuleSystem int

const (
	// ModuleSystemNode resolves modules with node_modules semantics.
	ModuleSystemNode ModuleSystem = iota
	// ModuleSystemHaste resolves modules by global Haste name.
	ModuleSystemHaste
)

// String returns the config-file token for the module system.
func (m ModuleSystem) String() string {
	switch m {
	case ModuleSystemNode:
		return "node"
	case ModuleSystemHaste:
		return "haste"
	}
	panic(fmt.Sprintf("options: unknown ModuleSystem %d", int(m)))
}

// ParseModuleSystem converts a config token into a ModuleSystem.
func ParseModuleSystem(s string) (ModuleSystem, error) {
	switch s {
	case "node":
		return ModuleSystemNode, nil
	case "haste":
		return ModuleSystemHaste, nil
	}
	return 0, fmt.Errorf("invalid module system %q (expected node or haste)", s)
}

// JSXMode selects how JSX elements are desugared.
type JSXMode int

const (
	// JSXModeReact desugars JSX to the standard React factory call.
	JSXModeReact JSXMode = iota
	// JSXModePragma desugars JSX to a user-specified pragma expression.
	// The expression itself lives in the record's JSXPragma field.
	JSXModePragma
)

func (m JSXMode) String() string {
	switch m {
	case JSXModeReact:
		return "react"
	case JSXModePragma:
		return "pragma"
	}
	panic(fmt.Sprintf("options: unknown JSXMode %d", int(m)))
}

// ParseJSXMode converts a config token into a JSXMode.
func ParseJSXMode(s string) (JSXMode, error) {
	switch s {
	case "react":
		return JSXModeReact, nil
	case "pragma":
		return JSXModePragma, nil
	}
	return 0, fmt.Errorf("invalid jsx mode %q (expected react or pragma)", s)
}

// SavedStateLoader selects where saved state is recovered from.
type SavedStateLoader int

const (
	// SavedStateNone disables saved-state recovery.
	SavedStateNone SavedStateLoader = iota
	// SavedStateLocal loads saved state from the local filesystem.
	SavedStateLocal
	// SavedStateSCM loads saved state managed by source control.
	SavedStateSCM
	// SavedStateFetcher loads saved state from a remote fetch service.
	SavedStateFetcher
)

func (l SavedStateLoader) String() string {
	switch l {
	case SavedStateNone:
		return "none"
	case SavedStateLocal:
		return "local"
	case SavedStateSCM:
		return "scm"
	case SavedStateFetcher:
		return "fetcher"
	}
	panic(fmt.Sprintf("options: unknown SavedStateLoader %d", int(l)))
}

// ParseSavedStateLoader converts a config token into a SavedStateLoader.
func ParseSavedStateLoader(s string) (SavedStateLoader, error) {
	switch s {
	case "none":
		return SavedStateNone, nil
	case "local":
		return SavedStateLocal, nil
	case "scm":
		return SavedStateSCM, nil
	case "fetcher":
		return SavedStateFetcher, nil
	}
	return 0, fmt.Errorf("invalid saved-state loader %q (expected none, local, scm or fetcher)", s)
}

// ReactRuntime selects the JSX runtime flavor.
type ReactRuntime int

const (
	// ReactRuntimeAutomatic uses the automatic JSX runtime imports.
	ReactRuntimeAutomatic ReactRuntime = iota
	// ReactRuntimeClassic uses the classic createElement calls.
	ReactRuntimeClassic
)

func (r ReactRuntime) String() string {
	switch r {
	case ReactRuntimeAutomatic:
		return "automatic"
	case ReactRuntimeClassic:
		return "classic"
	}
	panic(fmt.Sprintf("options: unknown ReactRuntime %d", int(r)))
}

// ParseReactRuntime converts a config token into a ReactRuntime.
func ParseReactRuntime(s string) (ReactRuntime, error) {
	switch s {
	case "automatic":
		return ReactRuntimeAutomatic, nil
	case "classic":
		return ReactRuntimeClassic, nil
	}
	return 0, fmt.Errorf("invalid react runtime %q (expected automatic or classic)", s)
}

// ComponentSyntax is the support level for component declaration syntax.
type ComponentSyntax int

const (
	// ComponentSyntaxOff rejects component syntax entirely.
	ComponentSyntaxOff ComponentSyntax = iota
	// ComponentSyntaxParseOnly parses component syntax without checking it.
	ComponentSyntaxParseOnly
	// ComponentSyntaxFull parses and type-checks component syntax.
	ComponentSyntaxFull
)

func (c ComponentSyntax) String() string {
	switch c {
	case ComponentSyntaxOff:
		return "off"
	case ComponentSyntaxParseOnly:
		return "parsing"
	case ComponentSyntaxFull:
		return "full"
	}
	panic(fmt.Sprintf("options: unknown ComponentSyntax %d", int(c)))
}

// ParseComponentSyntax converts a config token into a ComponentSyntax level.
func ParseComponentSyntax(s string) (ComponentSyntax, error) {
	switch s {
	case "off", "false":
		return ComponentSyntaxOff, nil
	case "parsing":
		return ComponentSyntaxParseOnly, nil
	case "full", "true":
		return ComponentSyntaxFull, nil
	}
	return 0, fmt.Errorf("invalid component syntax level %q (expected off, parsing or full)", s)
}

// CastingSyntax selects which type-cast dialects the parser accepts.
type CastingSyntax int

const (
	// CastingSyntaxColon accepts only (expr: Type) casts.
	CastingSyntaxColon CastingSyntax = iota
	// CastingSyntaxAs accepts only (expr as Type) casts.
	CastingSyntaxAs
	// CastingSyntaxBoth accepts both dialects.
	CastingSyntaxBoth
)

func (c CastingSyntax) String() string {
	switch c {
	case CastingSyntaxColon:
		return "colon"
	case CastingSyntaxAs:
		return "as"
	case CastingSyntaxBoth:
		return "both"
	}
	panic(fmt.Sprintf("options: unknown CastingSyntax %d", int(c)))
}

// ParseCastingSyntax converts a config token into a CastingSyntax.
func ParseCastingSyntax(s string) (CastingSyntax, error) {
	switch s {
	case "colon":
		return CastingSyntaxColon, nil
	case "as":
		return CastingSyntaxAs, nil
	case "both":
		return CastingSyntaxBoth, nil
	}
	return 0, fmt.Errorf("invalid casting syntax %q (expected colon, as or both)", s)
}

// Severity is a lint rule's configured reporting level.
type Severity int

const (
	// SeverityOff silences the rule.
	SeverityOff Severity = iota
	// SeverityWarn reports the rule without failing the check.
	SeverityWarn
	// SeverityError reports the rule as a check failure.
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityOff:
		return "off"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	}
	panic(fmt.Sprintf("options: unknown Severity %d", int(s)))
}

// ParseSeverity converts a config token into a Severity.
func ParseSeverity(s string) (Severity, error) {
	switch s {
	case "off":
		return SeverityOff, nil
	case "warn":
		return SeverityWarn, nil
	case "error":
		return SeverityError, nil
	}
	return 0, fmt.Errorf("invalid severity %q (expected off, warn or error)", s)
}
