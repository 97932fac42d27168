package favor

type TrustTier string

const (
	TierNew    TrustTier = "New"
	TierBronze TrustTier = "Bronze"
	TierSilver TrustTier = "Silver"
	TierGold   TrustTier = "Gold"
)

var trustThresholds = []struct {
	min  int
	tier TrustTier
}{
	{10, TierGold},
	{5, TierSilver},
	{1, TierBronze},
}

// TrustTierOf maps the number of favors a user took part in to a trust tier
func TrustTierOf(count int) TrustTier {
	for _, t := range trustThresholds {
		if count >= t.min {
			return t.tier
		}
	}
	return TierNew
}

// TierFor computes the tier from the favors a user posted and accepted
func TierFor(posted, accepted int) TrustTier {
	return TrustTierOf(posted + accepted)
}
