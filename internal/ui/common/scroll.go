package common

// ClampStart constrains a scroll start line to valid bounds for content of
// totalLines shown through a window of viewHeight lines.
func ClampStart(startLine, viewHeight, totalLines int) int {
	if startLine < 0 {
		startLine = 0
	}
	maxStart := totalLines - viewHeight
	if maxStart < 0 {
		maxStart = 0
	}
	if startLine > maxStart {
		startLine = maxStart
	}
	return startLine
}
