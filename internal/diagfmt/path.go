package diagfmt

import "advent/internal/source"

func formatPath(fs *source.FileSet, id source.FileID, mode PathMode) string {
	f := fs.Get(id)
	if f == nil {
		return "<unknown>"
	}
	switch mode {
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	default:
		return f.FormatPath(mode.String(), "")
	}
}

func lineText(fs *source.FileSet, pos source.Pos) (string, bool) {
	if pos.IsFile() {
		return "", false
	}
	f := fs.Get(pos.File)
	if f == nil || pos.Line > f.LineCount() {
		return "", false
	}
	return f.GetLine(pos.Line), true
}

func location(fs *source.FileSet, pos source.Pos, mode PathMode) string {
	path := formatPath(fs, pos.File, mode)
	if pos.IsFile() {
		return path
	}
	return path + ":" + uitoa(pos.Line)
}
