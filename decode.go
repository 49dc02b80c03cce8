package fastfact

import (
	"io"
	"mime"
	"mime/quotedprintable"
	"regexp"
	"strings"
)

// Soft line breaks and residual "=" artifacts left behind by
// quoted-printable encoding.
var (
	softBreakRe  = regexp.MustCompile(`=\s*\n\s*`)
	trailingEqRe = regexp.MustCompile(`=\s*$`)
	residualEqRe = regexp.MustCompile(`=\s*`)
	brokenNbspRe = regexp.MustCompile(`&nb=\s*sp;`)
)

// multiByteRepairer decodes multi-byte UTF-8 escape sequences. It must run
// before the single-byte table: decoding "=E2=80=9C" byte by byte would
// corrupt the sequence.
var multiByteRepairer = strings.NewReplacer(
	"=E2=80=9C", `"`, // left double quotation mark
	"=E2=80=9D", `"`, // right double quotation mark
	"=E2=80=99", "'", // right single quotation mark
	"=E2=80=98", "'", // left single quotation mark
	"=E2=80=93", "–", // en dash
	"=E2=80=94", "—", // em dash
	"=E2=80=A6", "…", // horizontal ellipsis
	"=C2=A0", " ", // non-breaking space
)

// singleByteRepairer decodes the quoted-printable escapes that survive in
// extracted body text.
var singleByteRepairer = strings.NewReplacer(
	"=3D", "=",
	"=20", " ",
	"=2E", ".",
	"=2C", ",",
	"=27", "'",
	"=22", `"`,
	"=28", "(",
	"=29", ")",
	"=3A", ":",
	"=3B", ";",
	"=21", "!",
	"=3F", "?",
)

// entityRepairer decodes the HTML entities that appear in snapshot text.
var entityRepairer = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
)

// DecodeWord decodes a MIME-encoded header value or inline-escaped text
// fragment. It tries, in order: standard RFC 2047 header decoding, manual
// quoted-printable decoding of the payload, and finally returns the input
// unchanged. It never fails.
func DecodeWord(token string) string {
	if strings.Contains(token, "=?") {
		dec := new(mime.WordDecoder)
		if s, err := dec.DecodeHeader(token); err == nil && s != token {
			return s
		}
	}

	payload := token
	if strings.HasPrefix(token, "=?utf-8?Q?") && strings.HasSuffix(token, "?=") {
		payload = token[len("=?utf-8?Q?") : len(token)-len("?=")]
		// Q-encoding represents spaces as underscores inside the payload.
		payload = strings.ReplaceAll(payload, "_", " ")
	}
	if s, err := io.ReadAll(quotedprintable.NewReader(strings.NewReader(payload))); err == nil {
		return string(s)
	}

	return token
}

// RepairBody repairs quoted-printable and entity artifacts in extracted
// body text (not headers). The table is applied in a fixed order: soft
// line-break removal, multi-byte escape sequences, single-byte escapes,
// residual "=" artifacts, then HTML entities. It never fails.
func RepairBody(text string) string {
	text = softBreakRe.ReplaceAllString(text, "")
	text = trailingEqRe.ReplaceAllString(text, "")

	text = multiByteRepairer.Replace(text)
	text = singleByteRepairer.Replace(text)

	// Entities split across an encoded line break, e.g. "&nb=\nsp;".
	text = brokenNbspRe.ReplaceAllString(text, " ")
	text = trailingEqRe.ReplaceAllString(text, "")
	text = residualEqRe.ReplaceAllString(text, "")

	text = entityRepairer.Replace(text)
	return text
}

// StripSoftBreaks removes encoded line continuations and trailing "="
// artifacts without touching escapes or entities. Used on header values
// after DecodeWord.
func StripSoftBreaks(text string) string {
	text = softBreakRe.ReplaceAllString(text, "")
	return trailingEqRe.ReplaceAllString(text, "")
}
