// Package linkextract finds outbound links in free text: scheme URLs,
// www-prefixed hosts, e-mail addresses and bare domains. A bare domain
// needs a commonly linked TLD or a path, since many ccTLDs are also words
// ("today.it", "main.py").
package linkextract

import (
	"net/url"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/net/publicsuffix"
)

type LinkType string

const (
	LinkTypeURL   LinkType = "url"
	LinkTypeWWW   LinkType = "www"
	LinkTypeEmail LinkType = "email"
	LinkTypeBare  LinkType = "bare_domain"
)

type Link struct {
	URL      string
	Domain   string
	Type     LinkType
	Position int
}

var (
	schemeRegex = regexp.MustCompile(`(?i)\b(?:https?|ftp)://[^\s<>"{}|\\^\x60\[\]]+`)
	wwwRegex    = regexp.MustCompile(`(?i)\bwww\.[^\s<>"{}|\\^\x60\[\]]+`)
	emailRegex  = regexp.MustCompile(`\b[A-Za-z0-9._%+\-]+@((?:[A-Za-z0-9](?:[A-Za-z0-9\-]{0,61}[A-Za-z0-9])?\.)+[A-Za-z]{2,24})\b`)

	// The final label must be lower case so that "end.It was" is not read as a domain.
	bareDomainRegex = regexp.MustCompile(`\b((?:[A-Za-z0-9](?:[A-Za-z0-9\-]{0,61}[A-Za-z0-9])?\.)+[a-z]{2,24})\b(/[^\s<>"]*)?`)
)

// Top-level domains that are linked often and are not common English words.
var linkedTLDs = map[string]bool{
	"com": true, "net": true, "org": true, "edu": true, "gov": true,
	"io": true, "co": true, "app": true, "dev": true, "ly": true,
	"gg": true, "xyz": true, "info": true, "biz": true, "ai": true,
	"tv": true, "fm": true, "blog": true, "tech": true, "online": true,
	"club": true, "uk": true, "de": true, "fr": true, "ru": true,
	"ca": true, "au": true, "nl": true, "es": true, "jp": true, "eu": true,
}

const trailingPunct = ".,;:!?)'\""

type span struct{ start, end int }

// ExtractLinks returns every link in text, ordered by position.
// Overlapping candidates are resolved in favour of the more explicit form
// (scheme URL, then www, then e-mail, then bare domain).
func ExtractLinks(text string) []Link {
	if text == "" {
		return nil
	}

	var (
		links   []Link
		covered []span
	)

	add := func(start, end int, link Link) {
		for _, s := range covered {
			if start < s.end && end > s.start {
				return
			}
		}

		covered = append(covered, span{start: start, end: end})
		link.Position = start
		links = append(links, link)
	}

	for _, m := range schemeRegex.FindAllStringIndex(text, -1) {
		raw := strings.TrimRight(text[m[0]:m[1]], trailingPunct)
		add(m[0], m[1], Link{URL: raw, Domain: extractDomain(raw), Type: LinkTypeURL})
	}

	for _, m := range wwwRegex.FindAllStringIndex(text, -1) {
		raw := strings.TrimRight(text[m[0]:m[1]], trailingPunct)
		add(m[0], m[1], Link{URL: raw, Domain: extractDomain("http://" + raw), Type: LinkTypeWWW})
	}

	for _, m := range emailRegex.FindAllStringSubmatchIndex(text, -1) {
		domain := strings.ToLower(text[m[2]:m[3]])
		if !hasPublicSuffix(domain) {
			continue
		}

		add(m[0], m[1], Link{URL: text[m[0]:m[1]], Domain: domain, Type: LinkTypeEmail})
	}

	for _, m := range bareDomainRegex.FindAllStringSubmatchIndex(text, -1) {
		domain := strings.ToLower(text[m[2]:m[3]])
		hasPath := m[4] >= 0 && m[5]-m[4] > 1

		if !hasPublicSuffix(domain) || (!hasPath && !linkedTLDs[topLevel(domain)]) {
			continue
		}

		raw := strings.TrimRight(text[m[0]:m[1]], trailingPunct)
		add(m[0], m[1], Link{URL: raw, Domain: domain, Type: LinkTypeBare})
	}

	sort.Slice(links, func(i, j int) bool { return links[i].Position < links[j].Position })

	return links
}

// ContainsLink reports whether text contains at least one link.
func ContainsLink(text string) bool {
	if schemeRegex.MatchString(text) || wwwRegex.MatchString(text) {
		return true
	}

	return len(ExtractLinks(text)) > 0
}

// Domains returns the distinct lower-cased domains linked from text.
func Domains(text string) []string {
	seen := make(map[string]bool)

	var domains []string

	for _, link := range ExtractLinks(text) {
		if link.Domain == "" || seen[link.Domain] {
			continue
		}

		seen[link.Domain] = true
		domains = append(domains, link.Domain)
	}

	return domains
}

func extractDomain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	return strings.ToLower(u.Hostname())
}

func topLevel(domain string) string {
	return domain[strings.LastIndexByte(domain, '.')+1:]
}

// hasPublicSuffix accepts domains that end in an ICANN suffix and are not a bare suffix themselves.
func hasPublicSuffix(domain string) bool {
	suffix, icann := publicsuffix.PublicSuffix(domain)
	if !icann || suffix == domain {
		return false
	}

	_, err := publicsuffix.EffectiveTLDPlusOne(domain)

	return err == nil
}
