package artists

// Current Starter Support Agreement version, recorded on LAUNCH_SUPPORT
// submissions at acceptance time.
const StarterAgreementVersion = "starter-v1.0-2026-02-14"

const StarterAgreementTitle = "Starter Support Agreement"

var StarterAgreementParagraphs = []string{
	"This Starter Support Agreement applies to Sabah Soundwave launch support submissions under the Starter package.",
	"By agreeing, the artist confirms the submitted information is accurate and that all provided links and media are owned or authorized for use.",
	"Sabah Soundwave will provide guidance for distribution setup, profile positioning, release timeline planning, and a promo strategy template.",
	"Starter support does not guarantee playlist placement, viral performance, or commercial outcomes.",
	"Any optional service fee, if applicable, must be confirmed before execution and is non-refundable once work has started.",
	"The artist remains responsible for final release decisions, account credentials, and rights management.",
	"Sabah Soundwave may pause support if submitted content is fraudulent, infringing, or outside Sabah-focused platform policy.",
	"By checking the agreement checkbox, the artist provides digital acceptance of this agreement version.",
}

const SubmitMusicTermsTitle = "Submit Music Terms"

type TermsSection struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

var SubmitMusicTerms = []TermsSection{
	{Heading: "1. Ownership Declaration", Body: "Artist confirms they own all rights to all submitted music, artwork, and associated media."},
	{Heading: "2. License to Sabah Soundwave", Body: "Artist grants Sabah Soundwave a non-exclusive, revocable license to display their profile, embed media links, and promote their contributions."},
	{Heading: "3. No Guarantee of Approval", Body: "Submission does not guarantee listing, featured placement, or Drop Day inclusion."},
	{Heading: "4. Content Responsibility", Body: "Artist is responsible for accuracy, legality, and copyright compliance of all submitted content."},
	{Heading: "5. AI Processing Disclosure", Body: "Artist agrees that submitted text may be processed by AI for suggestions; AI output is advisory."},
	{Heading: "6. Removal Policy", Body: "Sabah Soundwave may remove content if copyright claims or terms violations occur."},
	{Heading: "7. Data & Privacy", Body: "Personal data will be stored securely and used only for platform communication."},
	{Heading: "8. Governing Law", Body: "This Agreement is governed by the laws of Malaysia."},
}
