package filetime

// epochOffsetSeconds rebases between the Windows epoch (1601-01-01)
// that FileTime seconds count from on this platform and the Unix
// epoch (1970-01-01) used by FromUnixTime and UnixSeconds.
const epochOffsetSeconds = 11_644_473_600
