package score

import (
	"github.com/krishirajsinh-p/WebBoost/internal/model"
)

// socialPlatforms are the fixed platforms checked for presence, each
// worth ten points.
var socialPlatforms = []string{
	"facebook", "twitter", "instagram", "linkedin", "youtube", "pinterest", "tiktok",
}

// SocialIntegration scores social presence from the social signal bag:
// platform presence, sharing buttons, and three capped social-proof
// sub-scores. The platform term itself is uncapped; the final clamp
// absorbs it. An empty bag yields zero.
func SocialIntegration(social model.DataBag) model.CriterionResult {
	b := &model.SocialBreakdown{PlatformsFound: []string{}}

	if social.IsEmpty() {
		b.Annotation = "no social data collected"
		return model.CriterionResult{Score: 0, Breakdown: b}
	}

	for _, platform := range socialPlatforms {
		if social.Bool(platform) {
			b.PlatformsFound = append(b.PlatformsFound, platform)
		}
	}
	b.PlatformCount = len(b.PlatformsFound)
	b.SharingButtons = social.Int("sharing_buttons")

	proof := social.Bag("social_proof")
	b.ShareCounts = proof.Int("share_counts")
	b.FollowerCounts = proof.Int("follower_counts")
	b.Testimonials = proof.Int("testimonials")

	b.PlatformScore = float64(b.PlatformCount) * 10
	b.SharingScore = float64(b.SharingButtons) * 3

	shareProof := min(10, float64(b.ShareCounts)*2)
	followerProof := min(10, float64(b.FollowerCounts)*2)
	testimonialProof := min(15, float64(b.Testimonials)*3)
	b.SocialProofScore = shareProof + followerProof + testimonialProof

	final := clamp(b.PlatformScore + b.SharingScore + b.SocialProofScore)
	b.FinalScore = final
	return model.CriterionResult{Score: final, Breakdown: b}
}
