// Package profile starts optional runtime profiling of janusbuild with
// [github.com/pkg/profile].
//
// Profiling is compiled in only with the "pprof" build tag. Without it,
// [Modes] is empty and [Profiler.Start] returns a no-op controller.
//
//	janusbuild --pprof-mode=cpu --pprof-dir=./profiles -workspace=Game
//	go tool pprof -http=: ./profiles/cpu.pprof
//
// Profiles are written to [Profiler.Path], by default the pprof directory
// under the user cache directory:
//
//	$XDG_CACHE_HOME/janusbuild/pprof   (Linux/Unix)
//	~/Library/Caches/janusbuild/pprof  (macOS)
//	%LocalAppData%\janusbuild\pprof    (Windows)
//
// With the tag set, [net/http/pprof] is also linked in so its handlers are
// registered on [net/http.DefaultServeMux].
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
