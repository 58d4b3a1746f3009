// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"fmt"
	"strings"
)

const contentShape = `{
  "title": "Website Title",
  "description": "Meta description for the website",
  "sections": [
    {"type": "header", "title": "Brand Name", "logoText": "Brand initial or short name"},
    {"type": "hero", "title": "Main headline", "content": "Supporting text", "ctaText": "Call to action button text", "imageCategory": "business, creative, technology, ..."},
    {"type": "about", "title": "About section title", "content": "Two or three paragraphs about the business", "imageCategory": "Category for the about image"},
    {"type": "features", "title": "Features section title", "subtitle": "Optional subtitle",
     "items": [{"title": "Feature", "description": "What it does", "icon": "fa-icon-name"}]},
    {"type": "gallery", "title": "Gallery section title", "subtitle": "Optional subtitle",
     "items": [{"title": "Item", "description": "Item description", "category": "Image category", "size": "large | medium | small"}]},
    {"type": "testimonials", "title": "Testimonials section title", "subtitle": "What clients say",
     "items": [{"name": "Full name", "role": "Role or company", "content": "Two or three sentence quote", "imageCategory": "business"}]},
    {"type": "pricing", "title": "Pricing section title", "subtitle": "Choose a plan",
     "items": [{"title": "Plan name", "price": "$XX/month", "features": ["Feature"], "ctaText": "Get Started", "highlighted": false}]},
    {"type": "cta", "title": "Call to action title", "content": "Persuasive text", "buttonText": "Button text", "imageCategory": "Relevant category"},
    {"type": "contact", "title": "Contact section title", "content": "How to get in touch", "email": "contact@example.com", "phone": "+1 (555) 123-4567", "address": "123 Street, City, State ZIP", "mapEmbedUrl": "https://www.google.com/maps/embed?pb=..."},
    {"type": "footer", "companyName": "Company name", "tagline": "Short tagline",
     "socialLinks": [{"platform": "facebook", "url": "https://facebook.com/"}],
     "navigationSections": [{"title": "Company", "links": [{"text": "About", "url": "#about"}]}],
     "copyright": "© Company Name. All rights reserved."}
  ],
  "colorScheme": "primary | blue | green | red | yellow | purple",
  "fontStyle": "modern | classic | minimal | playful | professional",
  "imageStyle": "modern | vintage | minimalist | bold | professional"
}`

// contentSystemPrompt returns the instruction used by every backend to
// produce website content.
func contentSystemPrompt(templateType string) string {
	return fmt.Sprintf(`You are a website design expert. From the user's description, produce a complete website structure with realistic content.
Reply with JSON only, using exactly this structure:
%s

Follow the template style %q for the overall design approach.
Write detailed content that fits the purpose of the website, and keep every section relevant to it.
Use FontAwesome 5 icon names for "icon" fields (for example "fa-chart-line" or "fa-shield-alt").
Use categories such as business, technology, nature, food or fashion for image categories.`, contentShape, templateType)
}

func contentUserPrompt(prompt string) string {
	return "User request: " + prompt
}

const codeSystemPrompt = "You are a web development expert who specializes in creating beautiful, modern websites with clean, professional code. " +
	"Your websites are visually appealing, with careful spacing, typography and use of colour."

// codeGuidelines are sent with every code generation request.
var codeGuidelines = []string{
	"The HTML must be modern, semantic and fully responsive on all devices",
	"The CSS must use the color scheme and font style given in the content",
	"Use Font Awesome 5 icons where icon names are given",
	"Use Unsplash placeholder images where images are needed (https://source.unsplash.com/collection/3330445/800x600)",
	"Create an engaging, professional design with good spacing, shadows and animations",
	"Give the page a clear visual hierarchy with sufficient color contrast",
	"Add hover effects to interactive elements",
	"Implement a responsive navigation that works on mobile",
	"Use modern CSS: flexbox, grid and CSS variables",
	"Add subtle animations such as hover states and fade-ins",
	"Include a favicon link (a placeholder is fine)",
	"Add meta tags for SEO",
	"Link Google Fonts for typography",
	"Include Font Awesome and any other external CSS/JS libraries in the HTML head",
}

func codeUserPrompt(contentJSON, templateType string) string {
	var b strings.Builder
	b.WriteString("Generate HTML and CSS for a professional, modern and visually appealing website with this structure:\n")
	b.WriteString(contentJSON)
	fmt.Fprintf(&b, "\n\nFollow the template style %q for the overall design.\n\nGuidelines:\n", templateType)
	for i, g := range codeGuidelines {
		fmt.Fprintf(&b, "%d. %s\n", i+1, g)
	}
	b.WriteString(`
Reply with JSON only, in this format, with complete working code:
{
  "html": "<!-- complete HTML document with all CDN links and meta tags -->",
  "css": "/* complete stylesheet for the website */"
}`)
	return b.String()
}
