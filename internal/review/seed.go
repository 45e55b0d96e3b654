// File: internal/review/seed.go
package review

import "time"

var kst = time.FixedZone("KST", 9*60*60)

// SeedApplications are the sample applications loaded into an empty store.
func SeedApplications() []Application {
	return []Application{
		{
			ID:             1,
			Name:           "Kim Soo-jin",
			Title:          "KLPGA Professional",
			Location:       "Seoul",
			Email:          "soojin.kim@email.com",
			Phone:          "010-1234-5678",
			Specialties:    []string{"Putting", "Short Game", "Mental Coaching"},
			TourExperience: "KLPGA Tour 6 years",
			Certifications: []string{"KLPGA Professional License", "Sports Psychology Certificate"},
			AppliedAt:      time.Date(2025, time.November, 23, 14, 30, 0, 0, kst),
			ProfileImage:   "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=400",
		},
		{
			ID:             2,
			Name:           "Lee Dong-hyun",
			Title:          "PGA Master Professional",
			Location:       "Busan",
			Email:          "donghyun.lee@email.com",
			Phone:          "010-2345-6789",
			Specialties:    []string{"Driver Distance", "TrackMan Analysis", "Biomechanics"},
			TourExperience: "PGA Tour Coach 10+ years",
			Certifications: []string{"PGA Master Professional Certificate", "TrackMan University Master"},
			AppliedAt:      time.Date(2025, time.November, 23, 11, 20, 0, 0, kst),
			ProfileImage:   "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400",
		},
		{
			ID:             3,
			Name:           "Park Min-ji",
			Title:          "Short Game Specialist",
			Location:       "Gangnam",
			Email:          "minji.park@email.com",
			Phone:          "010-3456-7890",
			Specialties:    []string{"Chipping", "Bunker Play", "Scoring Zone"},
			TourExperience: "KLPGA Tour 3 years, Teaching 5 years",
			Certifications: []string{"KLPGA Teaching Professional", "Dave Pelz Short Game School"},
			AppliedAt:      time.Date(2025, time.November, 22, 16, 45, 0, 0, kst),
			ProfileImage:   "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=400",
		},
	}
}

// SeedApprovedPros are the sample listed pros loaded into an empty store.
func SeedApprovedPros() []ApprovedPro {
	return []ApprovedPro{
		{ID: 101, Name: "Hannah Park", Title: "LPGA Tour Professional", Location: "Seoul", Status: StatusActive, ProfileViews: 247, Leads: 5, MatchedLessons: 3, Rating: 4.9, SubscriptionTier: TierBasic},
		{ID: 102, Name: "James Kim", Title: "PGA Teaching Professional", Location: "Seoul", Status: StatusActive, ProfileViews: 189, Leads: 8, MatchedLessons: 6, Rating: 4.8, SubscriptionTier: TierPro},
		{ID: 103, Name: "Sophia Lee", Title: "KLPGA Teaching Professional", Location: "Gangnam", Status: StatusActive, ProfileViews: 156, Leads: 2, MatchedLessons: 1, Rating: 4.7, SubscriptionTier: TierBasic},
	}
}
