package url

import (
	"strconv"

	"github.com/hueristiq/hq-go-url/host"
	"github.com/hueristiq/hq-go-url/infra"
	"github.com/hueristiq/hq-go-url/percentencode"
	"github.com/hueristiq/hq-go-url/schemes"
)

// state is one of the URL Standard's 20 logical parser states (spec.md
// §4.6).
type state int

const (
	stateSchemeStart state = iota
	stateScheme
	stateNoScheme
	stateSpecialRelativeOrAuthority
	statePathOrAuthority
	stateRelative
	stateRelativeSlash
	stateSpecialAuthoritySlashes
	stateSpecialAuthorityIgnoreSlashes
	stateAuthority
	stateHost
	statePort
	stateFile
	stateFileSlash
	stateFileHost
	statePathStart
	statePath
	stateOpaquePath
	stateQuery
	stateFragment
)

// machine holds the state machine's ambient mutable state (spec.md §9):
// the input, cursor, buffer and per-parse flags are shared across every
// state, which is why this is a single loop over a struct rather than
// function-per-state recursion.
type machine struct {
	input   []rune
	pointer int

	state  state
	buffer []rune

	url  *URL
	base *URL

	atSignSeen     bool
	insideBrackets bool
	passwordSeen   bool

	sets         EncodeSets
	encodingName string

	op string
}

// Parse runs the URL Standard's parser over input (spec.md §4.6) and
// returns the resulting URL record. Options configure the base URL, the
// query output encoding, and (for the safe-URL facade) an alternate set of
// percent-encode sets.
func Parse(input string, opts ...Option) (u *URL, err error) {
	cfg := newParseConfig()

	for _, opt := range opts {
		opt(cfg)
	}

	m := &machine{
		input:        []rune(preprocess(input)),
		state:        stateSchemeStart,
		url:          &URL{PathKind: PathStructured},
		base:         cfg.base,
		sets:         cfg.sets,
		encodingName: cfg.encodingName,
		op:           "parse",
	}

	if err = m.run(); err != nil {
		return
	}

	u = m.url

	return
}

func (m *machine) fail(reason string) error {
	return newParseErrorf(m.op, string(m.input), reason)
}

func (m *machine) failErr(err error) error {
	return newParseError(m.op, string(m.input), err)
}

func (m *machine) remainingStartsWith(c rune) (ok bool) {
	return m.pointer+1 < len(m.input) && m.input[m.pointer+1] == c
}

func (m *machine) run() (err error) {
	for m.pointer <= len(m.input) {
		eof := m.pointer >= len(m.input)

		var c rune
		if !eof {
			c = m.input[m.pointer]
		}

		if err = m.step(c, eof); err != nil {
			return
		}

		m.pointer++
	}

	return
}

//nolint:gocyclo
func (m *machine) step(c rune, eof bool) (err error) {
	switch m.state {
	case stateSchemeStart:
		return m.stepSchemeStart(c, eof)
	case stateScheme:
		return m.stepScheme(c, eof)
	case stateNoScheme:
		return m.stepNoScheme(c, eof)
	case stateSpecialRelativeOrAuthority:
		return m.stepSpecialRelativeOrAuthority(c, eof)
	case statePathOrAuthority:
		return m.stepPathOrAuthority(c, eof)
	case stateRelative:
		return m.stepRelative(c, eof)
	case stateRelativeSlash:
		return m.stepRelativeSlash(c, eof)
	case stateSpecialAuthoritySlashes:
		return m.stepSpecialAuthoritySlashes(c, eof)
	case stateSpecialAuthorityIgnoreSlashes:
		return m.stepSpecialAuthorityIgnoreSlashes(c, eof)
	case stateAuthority:
		return m.stepAuthority(c, eof)
	case stateHost:
		return m.stepHost(c, eof)
	case statePort:
		return m.stepPort(c, eof)
	case stateFile:
		return m.stepFile(c, eof)
	case stateFileSlash:
		return m.stepFileSlash(c, eof)
	case stateFileHost:
		return m.stepFileHost(c, eof)
	case statePathStart:
		return m.stepPathStart(c, eof)
	case statePath:
		return m.stepPath(c, eof)
	case stateOpaquePath:
		return m.stepOpaquePath(c, eof)
	case stateQuery:
		return m.stepQuery(c, eof)
	case stateFragment:
		return m.stepFragment(c, eof)
	}

	return nil
}

func (m *machine) stepSchemeStart(c rune, eof bool) (err error) {
	switch {
	case !eof && infra.IsASCIIAlpha(c):
		m.buffer = append(m.buffer, asciiLower(c))
		m.state = stateScheme
	default:
		m.state = stateNoScheme
		m.pointer--
	}

	return
}

func (m *machine) stepScheme(c rune, eof bool) (err error) {
	switch {
	case !eof && isSchemeCodePoint(c):
		m.buffer = append(m.buffer, asciiLower(c))
	case !eof && c == ':':
		m.url.Scheme = string(m.buffer)
		m.buffer = nil

		switch {
		case m.url.Scheme == "file":
			m.state = stateFile
		case m.url.IsSpecial():
			if m.base != nil && m.base.Scheme == m.url.Scheme {
				m.state = stateSpecialRelativeOrAuthority
			} else {
				m.state = stateSpecialAuthoritySlashes
			}
		case m.remainingStartsWith('/'):
			m.state = statePathOrAuthority
			m.pointer++
		default:
			m.url.PathKind = PathOpaque
			m.state = stateOpaquePath
		}
	default:
		m.buffer = nil
		m.state = stateNoScheme
		m.pointer = -1
	}

	return
}

func (m *machine) stepNoScheme(c rune, eof bool) (err error) {
	switch {
	case m.base == nil, m.base.HasOpaquePath() && c != '#':
		return m.fail("no scheme and no usable base")
	case m.base.HasOpaquePath() && !eof && c == '#':
		m.url.Scheme = m.base.Scheme
		m.url.PathKind = PathOpaque
		m.url.Opaque = m.base.Opaque
		m.url.HasQuery = m.base.HasQuery
		m.url.Query = m.base.Query
		m.url.HasFragment = true
		m.url.FragmentTokenSeen = true
		m.state = stateFragment
	case m.base.Scheme != "file":
		m.state = stateRelative
		m.pointer--
	default:
		m.state = stateFile
		m.pointer--
	}

	return
}

func (m *machine) stepSpecialRelativeOrAuthority(c rune, eof bool) (err error) {
	if !eof && c == '/' && m.remainingStartsWith('/') {
		m.state = stateSpecialAuthorityIgnoreSlashes
		m.pointer++

		return
	}

	m.state = stateRelative
	m.pointer--

	return
}

func (m *machine) stepPathOrAuthority(c rune, eof bool) (err error) {
	if !eof && c == '/' {
		m.state = stateAuthority

		return
	}

	m.state = statePath
	m.pointer--

	return
}

func (m *machine) stepRelative(c rune, eof bool) (err error) {
	m.url.Scheme = m.base.Scheme

	switch {
	case !eof && (c == '/' || (m.url.IsSpecial() && c == '\\')):
		m.state = stateRelativeSlash
	default:
		m.url.Username = m.base.Username
		m.url.Password = m.base.Password
		m.url.HasHost = m.base.HasHost
		m.url.Host = m.base.Host
		m.url.HasPort = m.base.HasPort
		m.url.Port = m.base.Port
		m.url.PathKind = m.base.PathKind
		m.url.Segments = append([]string(nil), m.base.Segments...)
		m.url.Opaque = m.base.Opaque
		m.url.HasQuery = m.base.HasQuery
		m.url.Query = m.base.Query

		switch {
		case !eof && c == '?':
			m.url.HasQuery = true
			m.url.QueryTokenSeen = true
			m.url.Query = ""
			m.state = stateQuery
		case !eof && c == '#':
			m.url.HasFragment = true
			m.url.FragmentTokenSeen = true
			m.state = stateFragment
		case !eof:
			m.url.HasQuery = false
			m.url.Query = ""
			shortenPath(m.url)
			m.state = statePath
			m.pointer--
		}
	}

	return
}

func (m *machine) stepRelativeSlash(c rune, eof bool) (err error) {
	switch {
	case m.url.IsSpecial() && !eof && (c == '/' || c == '\\'):
		m.state = stateSpecialAuthorityIgnoreSlashes
	case !eof && c == '/':
		m.state = stateAuthority
	default:
		m.url.Username = m.base.Username
		m.url.Password = m.base.Password
		m.url.HasHost = m.base.HasHost
		m.url.Host = m.base.Host
		m.url.HasPort = m.base.HasPort
		m.url.Port = m.base.Port
		m.state = statePath
		m.pointer--
	}

	return
}

func (m *machine) stepSpecialAuthoritySlashes(c rune, eof bool) (err error) {
	if !eof && c == '/' && m.remainingStartsWith('/') {
		m.state = stateSpecialAuthorityIgnoreSlashes
		m.pointer++

		return
	}

	m.state = stateSpecialAuthorityIgnoreSlashes
	m.pointer--

	return
}

func (m *machine) stepSpecialAuthorityIgnoreSlashes(c rune, eof bool) (err error) {
	if !eof && (c == '/' || c == '\\') {
		return
	}

	m.state = stateAuthority
	m.pointer--

	return
}

func (m *machine) stepAuthority(c rune, eof bool) (err error) {
	switch {
	case !eof && c == '@':
		if m.atSignSeen {
			m.buffer = append([]rune{'%', '4', '0'}, m.buffer...)
		}

		m.atSignSeen = true

		var userPart, passPart []rune

		for _, bc := range m.buffer {
			switch {
			case bc == ':' && !m.passwordSeen:
				m.passwordSeen = true
				m.url.PasswordTokenSeen = true
			case m.passwordSeen:
				passPart = append(passPart, bc)
			default:
				userPart = append(userPart, bc)
			}
		}

		enc := percentencode.Encoder{Set: m.sets.Userinfo}

		if len(userPart) > 0 {
			m.url.Username += enc.Encode(string(userPart))
		}

		if len(passPart) > 0 {
			m.url.Password += enc.Encode(string(passPart))
		}

		m.buffer = nil
	case eof || c == '/' || c == '?' || c == '#' || (m.url.IsSpecial() && c == '\\'):
		if m.atSignSeen && len(m.buffer) == 0 {
			return m.fail("authority has an '@' but no host")
		}

		m.pointer -= len(m.buffer) + 1
		m.buffer = nil
		m.state = stateHost
	default:
		m.buffer = append(m.buffer, c)
	}

	return
}

func (m *machine) stepHost(c rune, eof bool) (err error) {
	switch {
	case !eof && c == ':' && !m.insideBrackets:
		if len(m.buffer) == 0 {
			return m.fail("host is empty before ':'")
		}

		var h host.Host

		h, err = host.Parse(string(m.buffer), m.url.IsSpecial())
		if err != nil {
			return m.failErr(err)
		}

		m.url.HasHost = true
		m.url.Host = h
		m.buffer = nil
		m.state = statePort
	case eof || c == '/' || c == '?' || c == '#' || (m.url.IsSpecial() && c == '\\'):
		m.pointer--

		if m.url.IsSpecial() && len(m.buffer) == 0 {
			return m.fail("special URL has an empty host")
		}

		var h host.Host

		h, err = host.Parse(string(m.buffer), m.url.IsSpecial())
		if err != nil {
			return m.failErr(err)
		}

		m.url.HasHost = true
		m.url.Host = h
		m.buffer = nil
		m.state = statePathStart
	default:
		if c == '[' {
			m.insideBrackets = true
		} else if c == ']' {
			m.insideBrackets = false
		}

		m.buffer = append(m.buffer, c)
	}

	return
}

func (m *machine) stepPort(c rune, eof bool) (err error) {
	switch {
	case !eof && infra.IsASCIIDigit(c):
		m.buffer = append(m.buffer, c)
	case eof || c == '/' || c == '?' || c == '#' || (m.url.IsSpecial() && c == '\\'):
		if len(m.buffer) > 0 {
			var port uint64

			port, err = strconv.ParseUint(string(m.buffer), 10, 32)
			if err != nil || port > 65535 {
				return m.fail("port out of range")
			}

			def, hasDefault := schemes.DefaultPort(m.url.Scheme)

			if hasDefault && int(port) == def {
				m.url.DefaultPortSeen = true
				m.url.HasPort = false
			} else {
				m.url.HasPort = true
				m.url.Port = uint16(port)
			}
		}

		m.url.PortTokenSeen = true
		m.buffer = nil
		m.state = statePathStart
		m.pointer--
	default:
		return m.fail("invalid port code point")
	}

	return
}

func (m *machine) stepFile(c rune, eof bool) (err error) {
	m.url.Scheme = "file"
	m.url.HasHost = true
	m.url.Host = host.Host{Kind: host.KindDomain, Domain: ""}

	switch {
	case !eof && (c == '/' || c == '\\'):
		m.state = stateFileSlash
	case m.base != nil && m.base.Scheme == "file":
		m.url.HasHost = m.base.HasHost
		m.url.Host = m.base.Host
		m.url.PathKind = m.base.PathKind
		m.url.Segments = append([]string(nil), m.base.Segments...)
		m.url.Opaque = m.base.Opaque
		m.url.HasQuery = m.base.HasQuery
		m.url.Query = m.base.Query

		switch {
		case !eof && c == '?':
			m.url.HasQuery = true
			m.url.QueryTokenSeen = true
			m.url.Query = ""
			m.state = stateQuery
		case !eof && c == '#':
			m.url.HasFragment = true
			m.url.FragmentTokenSeen = true
			m.state = stateFragment
		case !eof:
			m.url.HasQuery = false
			m.url.Query = ""

			if !startsWithWindowsDriveLetter(m.input[m.pointer:]) {
				shortenPath(m.url)
			} else {
				m.url.Segments = nil
			}

			m.state = statePath
			m.pointer--
		}
	default:
		m.state = statePath
		m.pointer--
	}

	return
}

func (m *machine) stepFileSlash(c rune, eof bool) (err error) {
	if !eof && (c == '/' || c == '\\') {
		m.state = stateFileHost

		return
	}

	if m.base != nil && m.base.Scheme == "file" {
		m.url.HasHost = m.base.HasHost
		m.url.Host = m.base.Host

		if !startsWithWindowsDriveLetter(m.input[m.pointer:]) && len(m.base.Segments) > 0 {
			seg := []rune(m.base.Segments[0])

			if len(seg) == 2 && isNormalizedWindowsDriveLetter(seg[0], seg[1]) {
				m.url.Segments = append(m.url.Segments, m.base.Segments[0])
			}
		}
	}

	m.state = statePath
	m.pointer--

	return
}

func (m *machine) stepFileHost(c rune, eof bool) (err error) {
	if eof || c == '/' || c == '\\' || c == '?' || c == '#' {
		m.pointer--

		if len(m.buffer) == 2 && isWindowsDriveLetter(m.buffer[0], m.buffer[1]) {
			m.state = statePath

			return
		}

		if len(m.buffer) == 0 {
			m.url.HasHost = true
			m.url.Host = host.Host{Kind: host.KindDomain, Domain: ""}
			m.state = statePathStart

			return
		}

		var h host.Host

		h, err = host.Parse(string(m.buffer), true)
		if err != nil {
			return m.failErr(err)
		}

		if h.Kind == host.KindDomain && h.Domain == "localhost" {
			h = host.Host{Kind: host.KindDomain, Domain: ""}
		}

		m.url.HasHost = true
		m.url.Host = h
		m.buffer = nil
		m.state = statePathStart

		return
	}

	m.buffer = append(m.buffer, c)

	return
}

func (m *machine) stepPathStart(c rune, eof bool) (err error) {
	switch {
	case m.url.IsSpecial():
		m.state = statePath

		if eof || (c != '/' && c != '\\') {
			m.pointer--
		}
	case !eof && c == '?':
		m.url.HasQuery = true
		m.url.QueryTokenSeen = true
		m.url.Query = ""
		m.state = stateQuery
	case !eof && c == '#':
		m.url.HasFragment = true
		m.url.FragmentTokenSeen = true
		m.state = stateFragment
	case !eof:
		m.state = statePath

		if c != '/' {
			m.pointer--
		}
	}

	return
}

// stepPath accumulates each segment's raw (un-encoded) code points in
// m.buffer and percent-encodes the whole segment in one call when it is
// finalized, rather than one code point at a time: the idempotency rule
// (spec.md §4.2) needs to see a '%' together with the two code points that
// follow it in the same Encode call, which a per-code-point call cannot
// provide.
func (m *machine) stepPath(c rune, eof bool) (err error) {
	switch {
	case eof || c == '/' || (m.url.IsSpecial() && c == '\\') || c == '?' || c == '#':
		raw := string(m.buffer)

		switch {
		case isDoubleDotPathSegment(raw):
			shortenPath(m.url)

			if !(c == '/' || (m.url.IsSpecial() && c == '\\')) {
				m.url.Segments = append(m.url.Segments, "")
			}
		case isSingleDotPathSegment(raw):
			if !(c == '/' || (m.url.IsSpecial() && c == '\\')) {
				m.url.Segments = append(m.url.Segments, "")
			}
		default:
			if m.url.Scheme == "file" && len(m.url.Segments) == 0 && len(m.buffer) == 2 && isWindowsDriveLetter(m.buffer[0], m.buffer[1]) {
				m.buffer[1] = ':'
				raw = string(m.buffer)
			}

			enc := percentencode.Encoder{Set: m.sets.Path}
			m.url.Segments = append(m.url.Segments, enc.Encode(raw))
		}

		m.buffer = nil

		if !eof && c == '?' {
			m.url.HasQuery = true
			m.url.QueryTokenSeen = true
			m.url.Query = ""
			m.state = stateQuery
		} else if !eof && c == '#' {
			m.url.HasFragment = true
			m.url.FragmentTokenSeen = true
			m.state = stateFragment
		}
	default:
		m.buffer = append(m.buffer, c)
	}

	return
}

func (m *machine) stepOpaquePath(c rune, eof bool) (err error) {
	switch {
	case !eof && c == '?':
		m.flushOpaque()
		m.url.HasQuery = true
		m.url.QueryTokenSeen = true
		m.url.Query = ""
		m.state = stateQuery
	case !eof && c == '#':
		m.flushOpaque()
		m.url.HasFragment = true
		m.url.FragmentTokenSeen = true
		m.state = stateFragment
	case eof:
		m.flushOpaque()
	default:
		m.buffer = append(m.buffer, c)
	}

	return
}

func (m *machine) flushOpaque() {
	if len(m.buffer) == 0 {
		return
	}

	enc := percentencode.Encoder{Set: m.sets.C0}
	m.url.Opaque += enc.Encode(string(m.buffer))
	m.buffer = nil
}

func (m *machine) stepQuery(c rune, eof bool) (err error) {
	if eof || (!eof && c == '#') {
		set := m.sets.Query
		if m.url.IsSpecial() {
			set = m.sets.SpecialQuery
		}

		requested, _, resolveErr := percentencode.ResolveEncoding(m.encodingName)
		if resolveErr != nil {
			return m.failErr(resolveErr)
		}

		outEnc, _ := percentencode.OutputEncoding(requested, m.encodingName, m.url.IsSpecial(), m.url.Scheme)

		enc := percentencode.Encoder{Encoding: outEnc, Set: set}

		m.url.Query += enc.Encode(string(m.buffer))
		m.buffer = nil

		if !eof && c == '#' {
			m.url.HasFragment = true
			m.url.FragmentTokenSeen = true
			m.state = stateFragment
		}

		return
	}

	m.buffer = append(m.buffer, c)

	return
}

func (m *machine) stepFragment(c rune, eof bool) (err error) {
	if eof {
		if len(m.buffer) > 0 {
			enc := percentencode.Encoder{Set: m.sets.Fragment}
			m.url.Fragment += enc.Encode(string(m.buffer))
			m.buffer = nil
		}

		return
	}

	m.buffer = append(m.buffer, c)

	return
}

