package domain

// SeedEvents returns the fixed catalog the store starts with.
func SeedEvents() []*Event {
	return []*Event{
		{
			ID:               "1",
			Title:            "Tech Conference 2025",
			ShortDescription: "Join us for the biggest tech conference of the year with industry leaders.",
			FullDescription:  "Tech Conference 2025 brings together the brightest minds in technology for three days of inspiring talks, workshops, and networking. Discover the latest innovations in AI, cloud computing, and software development. Connect with industry leaders and expand your professional network.",
			Price:            299,
			Date:             "2025-03-15",
			Category:         CategoryTechnology,
			Image:            "https://images.unsplash.com/photo-1540575467063-178a50c2df87?w=800",
			Location:         "San Francisco, CA",
			Capacity:         500,
		},
		{
			ID:               "2",
			Title:            "Summer Music Festival",
			ShortDescription: "Experience the best live music performances under the stars.",
			FullDescription:  "Summer Music Festival features over 50 artists across multiple stages. From rock to electronic, jazz to indie, there's something for every music lover. Enjoy food trucks, art installations, and unforgettable performances in a beautiful outdoor venue.",
			Price:            149,
			Date:             "2025-07-20",
			Category:         CategoryMusic,
			Image:            "https://images.unsplash.com/photo-1459749411175-04bf5292ceea?w=800",
			Location:         "Austin, TX",
			Capacity:         5000,
		},
		{
			ID:               "3",
			Title:            "Design Workshop",
			ShortDescription: "Learn modern design principles and tools from expert designers.",
			FullDescription:  "This intensive one-day workshop covers the fundamentals of modern design. Learn about typography, color theory, layout principles, and industry-standard tools like Figma and Adobe XD. Perfect for beginners and intermediate designers looking to level up their skills.",
			Price:            99,
			Date:             "2025-04-10",
			Category:         CategoryEducation,
			Image:            "https://images.unsplash.com/photo-1561070791-2526d30994b5?w=800",
			Location:         "New York, NY",
			Capacity:         30,
		},
		{
			ID:               "4",
			Title:            "Food & Wine Expo",
			ShortDescription: "Taste exceptional cuisine and fine wines from renowned chefs.",
			FullDescription:  "The Food & Wine Expo is a celebration of culinary excellence. Sample dishes from Michelin-star chefs, attend cooking demonstrations, and discover wines from boutique vineyards. A perfect event for food enthusiasts and industry professionals alike.",
			Price:            175,
			Date:             "2025-05-22",
			Category:         CategoryFood,
			Image:            "https://images.unsplash.com/photo-1555939594-58d7cb561ad1?w=800",
			Location:         "Los Angeles, CA",
			Capacity:         300,
		},
		{
			ID:               "5",
			Title:            "Startup Pitch Night",
			ShortDescription: "Watch innovative startups pitch to top investors and VCs.",
			FullDescription:  "Startup Pitch Night showcases the most promising new companies in the tech ecosystem. Watch founders present their vision, business model, and traction to a panel of experienced investors. Network with entrepreneurs, investors, and fellow innovators.",
			Price:            50,
			Date:             "2025-06-08",
			Category:         CategoryBusiness,
			Image:            "https://images.unsplash.com/photo-1559136555-9303baea8ebd?w=800",
			Location:         "Boston, MA",
			Capacity:         150,
		},
		{
			ID:               "6",
			Title:            "Yoga & Wellness Retreat",
			ShortDescription: "Rejuvenate your mind and body with yoga, meditation, and wellness.",
			FullDescription:  "Escape to a peaceful mountain retreat for three days of yoga, meditation, and holistic wellness practices. Led by certified instructors, this retreat includes daily yoga sessions, guided meditation, nutritious meals, and workshops on mindfulness and stress management.",
			Price:            499,
			Date:             "2025-08-12",
			Category:         CategoryWellness,
			Image:            "https://images.unsplash.com/photo-1506126613408-eca07ce68773?w=800",
			Location:         "Sedona, AZ",
			Capacity:         40,
		},
	}
}
