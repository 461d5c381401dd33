package definition

import (
	"fmt"
	"math"
	"strconv"

	"herald/pkg/command"
	"herald/pkg/parser"
)

// Compile turns one definition into a registrable command, resolving its
// handler by name. Structural validation beyond parser construction is left
// to Tree.Insert, which sees the whole signature.
func Compile(def CommandDefinition, handlers *Handlers) (*command.Command, error) {
	handler, err := handlers.lookupOrError(def.Handler)
	if err != nil {
		return nil, fmt.Errorf("command %q: %w", pathName(def.Path), err)
	}

	cmd := &command.Command{
		Path:        def.Path,
		Aliases:     def.Aliases,
		Description: def.Description,
		Permission:  def.Permission,
		Handler:     handler,
	}

	for _, arg := range def.Arguments {
		comp, err := compileArgument(arg)
		if err != nil {
			return nil, fmt.Errorf("command %q: argument %q: %w", pathName(def.Path), arg.Name, err)
		}
		cmd.Components = append(cmd.Components, comp)
	}

	for _, fl := range def.Flags {
		flag, err := compileFlag(fl)
		if err != nil {
			return nil, fmt.Errorf("command %q: flag %q: %w", pathName(def.Path), fl.Name, err)
		}
		cmd.Flags = append(cmd.Flags, flag)
	}

	return cmd, nil
}

// CompileAll compiles a definition list in order.
func CompileAll(defs []CommandDefinition, handlers *Handlers) ([]*command.Command, error) {
	cmds := make([]*command.Command, 0, len(defs))
	for _, def := range defs {
		cmd, err := Compile(def, handlers)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

func compileArgument(arg ArgumentDefinition) (*command.Component, error) {
	p, err := buildParser(arg.Type, arg.Values, arg.Min, arg.Max)
	if err != nil {
		return nil, err
	}
	comp := &command.Component{
		Name:        arg.Name,
		Parser:      p,
		Required:    arg.Required,
		Default:     arg.Default,
		Description: arg.Description,
	}
	if len(arg.Suggestions) > 0 {
		comp.Suggestions = parser.FixedSuggestions(arg.Suggestions)
	}
	return comp, nil
}

func compileFlag(fl FlagDefinition) (*command.Flag, error) {
	flag := &command.Flag{
		Name:        fl.Name,
		Aliases:     fl.Aliases,
		Permission:  fl.Permission,
		Description: fl.Description,
	}
	if fl.Repeatable {
		flag.Mode = command.FlagRepeatable
	}
	if fl.Type != "" {
		p, err := buildParser(fl.Type, fl.Values, fl.Min, fl.Max)
		if err != nil {
			return nil, err
		}
		flag.Component = &command.Component{Name: fl.Name, Parser: p, Required: true}
	}
	return flag, nil
}

// buildParser maps a definition type name onto a value parser.
func buildParser(typeName string, values []string, minStr, maxStr string) (parser.Parser, error) {
	switch typeName {
	case "string":
		return parser.NewStringParser(parser.StringSingle), nil
	case "quoted":
		return parser.NewStringParser(parser.StringQuoted), nil
	case "greedy":
		return parser.NewStringParser(parser.StringGreedy), nil
	case "greedy_flags":
		return parser.NewStringParser(parser.StringGreedyFlagYielding), nil
	case "bool":
		return parser.NewBooleanParser(), nil
	case "bool_liberal":
		return parser.NewLiberalBooleanParser(), nil
	case "int8":
		return integerParser[int8](minStr, maxStr)
	case "int16":
		return integerParser[int16](minStr, maxStr)
	case "int32":
		return integerParser[int32](minStr, maxStr)
	case "int64":
		return integerParser[int64](minStr, maxStr)
	case "float32":
		return floatParser[float32](32, minStr, maxStr)
	case "float64":
		return floatParser[float64](64, minStr, maxStr)
	case "enum":
		if len(values) == 0 {
			return nil, fmt.Errorf("enum needs a values list")
		}
		return parser.NewEnumParser(values...), nil
	case "duration":
		return parser.NewDurationParser(), nil
	case "uuid":
		return parser.NewUUIDParser(), nil
	case "char":
		return parser.NewCharParser(), nil
	case "":
		return nil, fmt.Errorf("no type")
	default:
		return nil, fmt.Errorf("unknown type %q", typeName)
	}
}

func integerParser[T parser.Integer](minStr, maxStr string) (parser.Parser, error) {
	p := parser.NewIntegerParser[T]()
	// A fresh parser's Min/Max sit exactly at the limits of T, which makes
	// them the width check for declared bounds: narrowing through T(v)
	// without it would silently wrap an out-of-range bound.
	typeMin, typeMax := int64(p.Min), int64(p.Max)
	if minStr != "" {
		v, err := parseIntegerBound(minStr, typeMin, typeMax)
		if err != nil {
			return nil, fmt.Errorf("bad min %q: %w", minStr, err)
		}
		p.Min = T(v)
		p.HasMin = true
	}
	if maxStr != "" {
		v, err := parseIntegerBound(maxStr, typeMin, typeMax)
		if err != nil {
			return nil, fmt.Errorf("bad max %q: %w", maxStr, err)
		}
		p.Max = T(v)
		p.HasMax = true
	}
	return p, nil
}

func parseIntegerBound(s string, typeMin, typeMax int64) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if v < typeMin || v > typeMax {
		return 0, fmt.Errorf("value out of range for the argument type [%d, %d]", typeMin, typeMax)
	}
	return v, nil
}

func floatParser[T parser.Float](bits int, minStr, maxStr string) (parser.Parser, error) {
	p := parser.NewFloatParser[T]()
	if minStr != "" {
		v, err := parseFloatBound(minStr, bits)
		if err != nil {
			return nil, fmt.Errorf("bad min %q: %w", minStr, err)
		}
		p.Min = T(v)
		p.HasMin = true
	}
	if maxStr != "" {
		v, err := parseFloatBound(maxStr, bits)
		if err != nil {
			return nil, fmt.Errorf("bad max %q: %w", maxStr, err)
		}
		p.Max = T(v)
		p.HasMax = true
	}
	return p, nil
}

// parseFloatBound parses at the target width so a bound too large for
// float32 fails here instead of collapsing to +Inf when narrowed.
func parseFloatBound(s string, bits int) (float64, error) {
	v, err := strconv.ParseFloat(s, bits)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) {
		return 0, fmt.Errorf("NaN is not a usable bound")
	}
	return v, nil
}

func pathName(path []string) string {
	name := ""
	for i, p := range path {
		if i > 0 {
			name += " "
		}
		name += p
	}
	return name
}
