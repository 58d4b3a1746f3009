// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// SectionType identifies the variant of a website section.
type SectionType string

const (
	SectionHeader       SectionType = "header"
	SectionHero         SectionType = "hero"
	SectionAbout        SectionType = "about"
	SectionFeatures     SectionType = "features"
	SectionServices     SectionType = "services"
	SectionGallery      SectionType = "gallery"
	SectionTestimonials SectionType = "testimonials"
	SectionPricing      SectionType = "pricing"
	SectionCTA          SectionType = "cta"
	SectionContact      SectionType = "contact"
	SectionFooter       SectionType = "footer"
)

// Content is the AI-agnostic description of a generated website. It is
// produced once per generation request and never modified afterwards.
type Content struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Sections    []Section `json:"sections"`
	ColorScheme string    `json:"colorScheme,omitempty"`
	FontStyle   string    `json:"fontStyle,omitempty"`
	ImageStyle  string    `json:"imageStyle,omitempty"`
}

// FindSection returns the first section of the given type, or nil.
func (c *Content) FindSection(t SectionType) *Section {
	for i := range c.Sections {
		if c.Sections[i].Type == t {
			return &c.Sections[i]
		}
	}
	return nil
}

// Section is one block of a website, keyed by Type. Which fields are
// meaningful depends on the type; see sectionFields.
type Section struct {
	Type SectionType `json:"type"`

	Title         string `json:"title,omitempty"`
	Subtitle      string `json:"subtitle,omitempty"`
	Content       string `json:"content,omitempty"`
	LogoText      string `json:"logoText,omitempty"`
	CTAText       string `json:"ctaText,omitempty"`
	ButtonText    string `json:"buttonText,omitempty"`
	ImageCategory string `json:"imageCategory,omitempty"`
	HeroImage     string `json:"heroImage,omitempty"`
	Image         string `json:"image,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
	MapEmbedURL   string `json:"mapEmbedUrl,omitempty"`
	CompanyName   string `json:"companyName,omitempty"`
	Tagline       string `json:"tagline,omitempty"`
	Copyright     string `json:"copyright,omitempty"`

	Items              []Item              `json:"items,omitempty"`
	Services           []Item              `json:"services,omitempty"`
	SocialLinks        []SocialLink        `json:"socialLinks,omitempty"`
	NavigationSections []NavigationSection `json:"navigationSections,omitempty"`
}

// Item is an entry of a list-valued section field: a feature, gallery
// entry, testimonial, pricing plan or service.
type Item struct {
	Title         string   `json:"title,omitempty"`
	Description   string   `json:"description,omitempty"`
	Icon          string   `json:"icon,omitempty"`
	Category      string   `json:"category,omitempty"`
	Size          string   `json:"size,omitempty"`
	Name          string   `json:"name,omitempty"`
	Role          string   `json:"role,omitempty"`
	Content       string   `json:"content,omitempty"`
	ImageCategory string   `json:"imageCategory,omitempty"`
	Price         string   `json:"price,omitempty"`
	Features      []string `json:"features,omitempty"`
	CTAText       string   `json:"ctaText,omitempty"`
	Highlighted   bool     `json:"highlighted,omitempty"`
}

// SocialLink is a footer link to a social platform.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// NavigationSection is a titled group of footer links.
type NavigationSection struct {
	Title string `json:"title"`
	Links []Link `json:"links"`
}

// Link is a plain text hyperlink.
type Link struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// FieldKind tells scalar fields apart from list-valued ones.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldList
)

type fieldAccessor struct {
	kind FieldKind
	text func(*Section) string
	size func(*Section) int
}

func textField(get func(*Section) string) fieldAccessor {
	return fieldAccessor{kind: FieldText, text: get}
}

func listField(size func(*Section) int) fieldAccessor {
	return fieldAccessor{kind: FieldList, size: size}
}

var (
	fTitle         = textField(func(s *Section) string { return s.Title })
	fSubtitle      = textField(func(s *Section) string { return s.Subtitle })
	fContent       = textField(func(s *Section) string { return s.Content })
	fLogoText      = textField(func(s *Section) string { return s.LogoText })
	fCTAText       = textField(func(s *Section) string { return s.CTAText })
	fButtonText    = textField(func(s *Section) string { return s.ButtonText })
	fImageCategory = textField(func(s *Section) string { return s.ImageCategory })
	fHeroImage     = textField(func(s *Section) string { return s.HeroImage })
	fImage         = textField(func(s *Section) string { return s.Image })
	fEmail         = textField(func(s *Section) string { return s.Email })
	fPhone         = textField(func(s *Section) string { return s.Phone })
	fAddress       = textField(func(s *Section) string { return s.Address })
	fMapEmbedURL   = textField(func(s *Section) string { return s.MapEmbedURL })
	fCompanyName   = textField(func(s *Section) string { return s.CompanyName })
	fTagline       = textField(func(s *Section) string { return s.Tagline })
	fCopyright     = textField(func(s *Section) string { return s.Copyright })

	fItems       = listField(func(s *Section) int { return len(s.Items) })
	fServices    = listField(func(s *Section) int { return len(s.Services) })
	fSocialLinks = listField(func(s *Section) int { return len(s.SocialLinks) })
	fNavSections = listField(func(s *Section) int { return len(s.NavigationSections) })
)

// sectionFields is the field table of every section variant. A field name
// that is not listed for a type does not exist for that type.
var sectionFields = map[SectionType]map[string]fieldAccessor{
	SectionHeader: {
		"title":    fTitle,
		"logoText": fLogoText,
	},
	SectionHero: {
		"title":         fTitle,
		"subtitle":      fSubtitle,
		"content":       fContent,
		"ctaText":       fCTAText,
		"imageCategory": fImageCategory,
		"heroImage":     fHeroImage,
	},
	SectionAbout: {
		"title":         fTitle,
		"content":       fContent,
		"imageCategory": fImageCategory,
		"image":         fImage,
	},
	SectionFeatures: {
		"title":    fTitle,
		"subtitle": fSubtitle,
		"items":    fItems,
	},
	SectionServices: {
		"title":    fTitle,
		"subtitle": fSubtitle,
		"services": fServices,
		"items":    fItems,
	},
	SectionGallery: {
		"title":    fTitle,
		"subtitle": fSubtitle,
		"items":    fItems,
	},
	SectionTestimonials: {
		"title":    fTitle,
		"subtitle": fSubtitle,
		"items":    fItems,
	},
	SectionPricing: {
		"title":    fTitle,
		"subtitle": fSubtitle,
		"items":    fItems,
	},
	SectionCTA: {
		"title":         fTitle,
		"content":       fContent,
		"buttonText":    fButtonText,
		"imageCategory": fImageCategory,
	},
	SectionContact: {
		"title":       fTitle,
		"content":     fContent,
		"email":       fEmail,
		"phone":       fPhone,
		"address":     fAddress,
		"mapEmbedUrl": fMapEmbedURL,
	},
	SectionFooter: {
		"companyName":        fCompanyName,
		"tagline":            fTagline,
		"copyright":          fCopyright,
		"socialLinks":        fSocialLinks,
		"navigationSections": fNavSections,
	},
}

// HasField reports whether name is a declared field of the section type.
func HasField(t SectionType, name string) bool {
	_, ok := sectionFields[t][name]
	return ok
}

// KnownSectionType reports whether t has a field table.
func KnownSectionType(t SectionType) bool {
	_, ok := sectionFields[t]
	return ok
}

// FieldKindOf returns the kind of a declared field. ok is false for names
// that the type does not declare.
func FieldKindOf(t SectionType, name string) (kind FieldKind, ok bool) {
	acc, ok := sectionFields[t][name]
	return acc.kind, ok
}

// Text returns the value of a scalar field. ok is false when the field is
// not declared for the section's type, is list-valued, or is empty.
func (s *Section) Text(name string) (string, bool) {
	acc, ok := sectionFields[s.Type][name]
	if !ok || acc.kind != FieldText {
		return "", false
	}
	v := acc.text(s)
	return v, v != ""
}

// Len returns the number of entries of a list-valued field, or 0.
func (s *Section) Len(name string) int {
	acc, ok := sectionFields[s.Type][name]
	if !ok || acc.kind != FieldList {
		return 0
	}
	return acc.size(s)
}
