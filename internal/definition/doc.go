// Package definition loads declarative command definitions from YAML files
// and compiles them into registered commands.
//
// A definitions directory contains any number of .yaml files, each with a
// top-level `commands` list. Every entry describes one command signature:
// its literal path and aliases, its positional arguments with their parser
// types and bounds, its flags, its permission, and the name of the handler
// that runs it. Handler names are resolved against a Handlers registry filled
// in by the embedding application; a definition naming an unknown handler is
// a load error, not a runtime surprise.
//
// Files are loaded in lexical filename order and commands in file order, so
// registration order (which drives suggestion ordering and tie-breaks) is
// fully determined by the directory contents.
//
// The Watcher keeps a running process in sync with the directory: it
// debounces filesystem events, recompiles the whole definition set, and
// swaps the registry atomically. A broken edit leaves the previous command
// tree serving and logs what was wrong with the new one.
package definition
