package atsutil

import "jobscout-engine/internal/domain"

// Canonicalize converts one provider posting into the canonical transient
// shape. descHTML may be raw provider HTML; markup is stripped before
// storage and the derived fields (requirements excerpt, tech stack, remote
// flag, fingerprint) are computed from the cleaned text.
func Canonicalize(company, title, url, descHTML, location string) domain.ScrapedJob {
	title = CleanText(title)
	desc := StripHTML(descHTML)
	loc := CleanText(location)

	return domain.ScrapedJob{
		Company:      company,
		Title:        title,
		URL:          url,
		Description:  desc,
		Requirements: ExtractRequirements(desc),
		TechStack:    ExtractTechStack(title + " " + desc),
		Location:     loc,
		Remote:       DetectRemote(loc, desc),
		Fingerprint:  domain.Fingerprint(company, title),
	}
}
