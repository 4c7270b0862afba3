// internal/domain/newsletter/templates.go
package newsletter

var templates = []Template{
	{
		ID:        1,
		Subject:   "🎉 Welcome to Our Amazing Store!",
		Content:   "Welcome to our family! We're thrilled to have you join us. Get ready for exclusive deals, new product launches, and insider tips!",
		DelayDays: 0,
		Type:      EmailTypeWelcome,
	},
	{
		ID:        2,
		Subject:   "🛍️ Here's Your Exclusive 15% Off Code!",
		Content:   "Thanks for signing up! Use code WELCOME15 for 15% off your first purchase. Valid for the next 7 days!",
		DelayDays: 1,
		Type:      EmailTypeDiscount,
	},
	{
		ID:        3,
		Subject:   "✨ Discover Our Best-Selling Products",
		Content:   "Check out what everyone's talking about! Our top-rated products are flying off the shelves. Don't miss out!",
		DelayDays: 3,
		Type:      EmailTypeProductShowcase,
	},
	{
		ID:        4,
		Subject:   "💡 Pro Tips: Getting the Most Out of Your Purchase",
		Content:   "Here are some insider tips to maximize your experience with our products. Plus, see what other customers are saying!",
		DelayDays: 5,
		Type:      EmailTypeTips,
	},
	{
		ID:        5,
		Subject:   "🔥 Flash Sale Alert - 24 Hours Only!",
		Content:   "URGENT: Our biggest sale of the month is happening NOW! Up to 50% off selected items. Sale ends in 24 hours!",
		DelayDays: 7,
		Type:      EmailTypeFlashSale,
	},
	{
		ID:        6,
		Subject:   "📦 Don't Forget - Your Cart is Waiting!",
		Content:   "You left some amazing items in your cart! Complete your purchase now and get free shipping on orders over $50.",
		DelayDays: 10,
		Type:      EmailTypeCartReminder,
	},
	{
		ID:        7,
		Subject:   "🌟 Customer Spotlight & Success Stories",
		Content:   "See how other customers are loving their purchases! Read real reviews and get inspired by their stories.",
		DelayDays: 14,
		Type:      EmailTypeSocialProof,
	},
	{
		ID:        8,
		Subject:   "🎁 Surprise! Here's Something Special for You",
		Content:   "We appreciate your loyalty! Here's an exclusive gift just for being an awesome customer. No purchase necessary!",
		DelayDays: 21,
		Type:      EmailTypeLoyaltyGift,
	},
	{
		ID:        9,
		Subject:   "📈 Your Personalized Product Recommendations",
		Content:   "Based on your interests, we think you'll love these handpicked products. Curated just for you!",
		DelayDays: 28,
		Type:      EmailTypeRecommendations,
	},
	{
		ID:        10,
		Subject:   "💎 VIP Access: Be the First to Know!",
		Content:   "Congratulations! You're now part of our VIP community. Get early access to new products and exclusive member-only deals!",
		DelayDays: 35,
		Type:      EmailTypeVIPAccess,
	},
}

// Templates returns the fixed email sequence in send order
func Templates() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}
