package uri

// NormalizePath removes dot segments from the path in place, per
// RFC 3986 section 5.2.4 applied directly to the segment sequence.
//
// A "." segment is dropped. A ".." segment pops the previous output
// segment, unless the output is empty or holds only the absolute-root
// marker: the root marker is never popped and the path never gains
// negative depth. The operation is idempotent and leaves every other
// component untouched.
func (u *URI) NormalizePath() {
	out := u.path[:0:0]
	for _, seg := range u.path {
		switch seg {
		case ".":
		case "..":
			if len(out) == 0 || (len(out) == 1 && out[0] == "") {
				continue
			}
			out = out[:len(out)-1]
		default:
			out = append(out, seg)
		}
	}
	u.path = out
}
