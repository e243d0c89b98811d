// Package generation owns a single barrel generation run.
//
// A Session validates the target directory, dispatches on the Strategy and
// writes one barrel per visited directory, narrating progress to a Logger.
// It is the only stateful component; everything it decides is delegated to
// the pure functions in package barrel.
//
//	session := generation.New(cfg, logging.NewConsole(os.Stdout))
//	result := session.Start(generation.StartParams{FSPath: dir, Path: barrel.ToPosixPath(dir), Type: generation.Recursive})
//	session.EndGeneration()
package generation
