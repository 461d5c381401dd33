package command

import (
	"fmt"
	"sync"

	"herald/pkg/caption"
	"herald/pkg/input"
	"herald/pkg/logging"
)

// captioned is satisfied by every typed failure the framework produces.
type captioned interface {
	CaptionKey() caption.Key
	Variables() caption.Variables
}

// Service is the front door of the framework: it resolves a line against
// the registry's current tree, invokes the matched handler, and answers
// suggestion queries. It is safe for concurrent use; each call builds its
// own cursor and context.
type Service struct {
	registry *Registry
	perm     PermissionFunc
	captions *caption.Registry

	cacheMu sync.Mutex
	cache   map[string][]string
	cacheAt uint64
}

// ServiceConfig carries the collaborators of a Service. Only Registry is
// mandatory; a nil Captions falls back to the default English registry and
// a nil Permission allows everything.
type ServiceConfig struct {
	Registry   *Registry
	Permission PermissionFunc
	Captions   *caption.Registry
}

// NewService creates a service from its configuration.
func NewService(config ServiceConfig) *Service {
	captions := config.Captions
	if captions == nil {
		captions = caption.NewRegistry()
	}
	return &Service{
		registry: config.Registry,
		perm:     config.Permission,
		captions: captions,
		cache:    make(map[string][]string),
	}
}

// Registry exposes the service's registry, for help rendering and reloads.
func (s *Service) Registry() *Registry {
	return s.registry
}

// Execute resolves and runs one command line for a sender. The returned
// error is always one of the framework's typed failures; Render turns it
// into user-facing text.
func (s *Service) Execute(sender, line string) error {
	ctx := NewContext(sender, false)
	in := input.New(line)

	res, err := s.registry.Tree().Resolve(ctx, in, s.perm)
	if err != nil {
		logging.Debug("CommandService", "Resolution failed for %q: %v", line, err)
		return err
	}

	logging.Debug("CommandService", "Executing %q for sender %s", res.Command.FullName(), sender)
	return s.invoke(res)
}

// invoke runs the handler, converting returned errors and panics into the
// framework's error channel.
func (s *Service) invoke(res *Result) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logging.Error("CommandService", fmt.Errorf("%v", r), "Handler for %q panicked", res.Command.FullName())
			err = &ExecutionError{Cause: fmt.Errorf("panic: %v", r)}
		}
	}()
	if handlerErr := res.Command.Handler(res.Context); handlerErr != nil {
		return &ExecutionError{Cause: handlerErr}
	}
	return nil
}

// Suggest returns completion candidates for a partial line. Results for
// lines whose walk touched only context-free parsers are cached per sender
// until the next registry publish; anything else is recomputed every call.
func (s *Service) Suggest(sender, line string) []string {
	key := sender + "\x00" + line
	version := s.registry.Version()

	s.cacheMu.Lock()
	if s.cacheAt == version {
		if cached, ok := s.cache[key]; ok {
			s.cacheMu.Unlock()
			return cached
		}
	}
	s.cacheMu.Unlock()

	ctx := NewContext(sender, true)
	in := input.New(line)
	out, contextFree := s.registry.Tree().suggestTracked(ctx, in, s.perm)

	if contextFree {
		s.cacheMu.Lock()
		if s.cacheAt != version {
			s.cache = make(map[string][]string)
			s.cacheAt = version
		}
		s.cache[key] = out
		s.cacheMu.Unlock()
	}
	return out
}

// Render turns a typed failure into the sender-visible message via the
// caption registry. Unknown error types render through their Error string.
func (s *Service) Render(err error) string {
	if err == nil {
		return ""
	}
	if c, ok := err.(captioned); ok {
		return s.captions.Render(c.CaptionKey(), c.Variables())
	}
	return err.Error()
}
