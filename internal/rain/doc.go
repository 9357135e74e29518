// Package rain holds the error kinds shared by the matrixrain packages.
//
// Terminal failures that happen while the animation is running are
// reported as [*FrameError], which unwraps to one of the sentinel kinds:
//
//	var fe *rain.FrameError
//	if errors.As(err, &fe) && errors.Is(err, rain.ErrTerminalWrite) {
//		// fatal mid-run write failure
//	}
package rain
