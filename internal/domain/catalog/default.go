package catalog

// Default returns the built-in marketplace event table.
//
// The constants encode platform policy: engagement events carry small
// positive weights with fast decay, paid advertiser actions carry the
// largest weights with slow decay, and moderation penalties are negative
// and never decay.
func Default(opts ...Option) *Catalog {
	both := []Role{RoleCommon, RoleAdvertiser}
	common := []Role{RoleCommon}
	advertiser := []Role{RoleAdvertiser}

	return New(map[string]EventType{
		"LOGIN": {Weight: 0.5, Decay: 0.05, AllowedFor: both},
		"AD_LIKED": {Weight: 1.0, TargetWeight: 2.0, Decay: 0.03,
			AllowedFor: common, AffectsTarget: true, DelayFactor: 0.97},
		"POSITIVE_COMMENT": {Weight: 2.0, TargetWeight: 2.5, Decay: 0.02,
			AllowedFor: common, AffectsTarget: true, DelayFactor: 0.98},
		"AD_SHARED": {Weight: 4.0, TargetWeight: 3.0, Decay: 0.01,
			AllowedFor: both, AffectsTarget: true, DelayFactor: 0.98},
		"AD_VISITED": {Weight: 0.3, TargetWeight: 1.5, Decay: 0.07,
			AllowedFor: common, AffectsTarget: true, DelayFactor: 0.96},
		"GAINED_FOLLOWER": {Weight: 5.0, Decay: 0.01, AllowedFor: advertiser},
		"FOLLOWED_USER": {Weight: 0.7, TargetWeight: 1.5, Decay: 0.08,
			AllowedFor: both, AffectsTarget: true},
		"SENT_MESSAGE":         {Weight: 1.0, Decay: 0.03, AllowedFor: both},
		"RECEIVED_MESSAGE":     {Weight: 0.5, Decay: 0.03, AllowedFor: both},
		"RESPONDED_TO_MESSAGE": {Weight: 1.2, Decay: 0.03, AllowedFor: advertiser},
		"ADDED_TO_FAVOURITES": {Weight: 4.0, TargetWeight: 1.0, Decay: 0.01,
			AllowedFor: common, AffectsTarget: true, DelayFactor: 0.97},
		"VISITED_PROFILE": {Weight: 0.4, TargetWeight: 0.4, Decay: 0.06,
			AllowedFor: common, AffectsTarget: true},
		"AD_POSTED_FREE":  {Weight: 4.0, Decay: 0.02, AllowedFor: advertiser},
		"AD_POSTED_PAI":   {Weight: 8.0, Decay: 0.01, AllowedFor: advertiser},
		"AD_POSTED_MONEY": {Weight: 15.0, Decay: 0.005, AllowedFor: advertiser},
		"RESPONDED_TO_REVIEW": {Weight: 1.0, TargetWeight: 0.5, Decay: 0.02,
			AllowedFor: advertiser, AffectsTarget: true, DelayFactor: 0.99},
		"GAVE_RATING":         {Weight: 1.5, Decay: 0.04, AllowedFor: common},
		"RECEIVED_RATING":     {Weight: 3.5, Decay: 0.02, AllowedFor: advertiser},
		"VERIFIED_PROFILE":    {Weight: 10.0, Decay: 0.0, AllowedFor: both},
		"REVIEW_RECEIVED":     {Weight: 2.0, Decay: 0.02, AllowedFor: advertiser},
		"AD_BLOCKED":          {Weight: -5.0, Decay: 0.0, AllowedFor: advertiser},
		"AD_REPORTED":         {Weight: -6.0, Decay: 0.0, AllowedFor: common},
		"REPORTED_ADVERTISER": {Weight: -20.0, Decay: 0.0, AllowedFor: advertiser},
		"INACTIVITY":          {Weight: -3.0, Decay: 0.0, AllowedFor: both},
	}, opts...)
}
