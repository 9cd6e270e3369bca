package services

// blogArticle is one entry in the fixed publication rotation.
type blogArticle struct {
	title         string
	snippet       string
	content       string
	imageCategory string
}

// blogImages maps an article topic to its image pool. One image is
// picked at random each time the article is published.
var blogImages = map[string][]string{
	"serving_sizes": {
		"https://images.pexels.com/photos/1640774/pexels-photo-1640774.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		"https://images.pexels.com/photos/5908226/pexels-photo-5908226.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		"https://images.pexels.com/photos/1640773/pexels-photo-1640773.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		"https://images.pexels.com/photos/8107991/pexels-photo-8107991.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
	},
	"food_labels": {
		"https://images.pexels.com/photos/3962285/pexels-photo-3962285.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		"https://images.pexels.com/photos/4873821/pexels-photo-4873821.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		"https://images.pexels.com/photos/4873838/pexels-photo-4873838.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		"https://images.pexels.com/photos/4873601/pexels-photo-4873601.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
	},
	"artificial_colors": {
		"https://images.pexels.com/photos/1739748/pexels-photo-1739748.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		"https://images.pexels.com/photos/2064359/pexels-photo-2064359.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		"https://images.pexels.com/photos/1028425/pexels-photo-1028425.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		"https://images.pexels.com/photos/2064358/pexels-photo-2064358.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
	},
	"processed_foods": {
		"https://images.pexels.com/photos/2099767/pexels-photo-2099767.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		"https://images.pexels.com/photos/4033165/pexels-photo-4033165.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		"https://images.pexels.com/photos/4033156/pexels-photo-4033156.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		"https://images.pexels.com/photos/3735216/pexels-photo-3735216.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
	},
	"kids_marketing": {
		"https://images.pexels.com/photos/2983101/pexels-photo-2983101.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		"https://images.pexels.com/photos/4110541/pexels-photo-4110541.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		"https://images.pexels.com/photos/4110543/pexels-photo-4110543.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		"https://images.pexels.com/photos/4110548/pexels-photo-4110548.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
	},
	"food_cravings": {
		"https://images.pexels.com/photos/1099680/pexels-photo-1099680.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		"https://images.pexels.com/photos/376464/pexels-photo-376464.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		"https://images.pexels.com/photos/291528/pexels-photo-291528.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		"https://images.pexels.com/photos/2228559/pexels-photo-2228559.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
	},
	"sustainable_packaging": {
		"https://images.pexels.com/photos/4873642/pexels-photo-4873642.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		"https://images.pexels.com/photos/4873559/pexels-photo-4873559.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		"https://images.pexels.com/photos/4873568/pexels-photo-4873568.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		"https://images.pexels.com/photos/4873581/pexels-photo-4873581.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
	},
}

var blogArticles = []blogArticle{
	{
		title:   "The Hidden Dangers of Misleading Serving Sizes",
		snippet: "This week, we're exposing the misleading serving sizes in food packaging. This common trick can lead to increased consumption of hidden sugars and other health problems.",
		content: `When you pick up a packaged food item, one of the first things you might check is the calorie count. However, what many consumers don't realize is how misleading serving sizes can significantly skew their perception of nutritional intake. Manufacturers often manipulate serving sizes to make their products appear healthier than they are.

The prevalence of hidden sugars in processed foods has reached alarming levels. These sweeteners appear under numerous names on ingredient lists, making it difficult for consumers to track their total sugar intake.

To protect yourself from these marketing tactics: read ingredient lists carefully, compare serving sizes with your actual portions, look beyond front-of-package claims, and consider overall nutritional value rather than single claims.`,
		imageCategory: "serving_sizes",
	},
	{
		title:   "Decoding Food Labels: How to Spot Health Halos",
		snippet: "Learn about the deceptive \"health halo\" effect in food marketing and how terms like \"natural\" and \"organic\" might be misleading you about nutritional value.",
		content: `The term "health halo" refers to the perception that a food is healthy based on a single claim. Words like "natural" or "organic" often create this halo effect, leading consumers to overlook other important nutritional factors.

Many products labeled as "healthy" or "natural" can still be high in calories, sugars, or unhealthy fats. Always check the nutrition facts panel rather than front-of-package claims, be skeptical of trendy health terms, compare similar products across brands, and watch serving sizes and added sugars.`,
		imageCategory: "food_labels",
	},
	{
		title:   "The Truth About Artificial Coloring in Food Packaging",
		snippet: "Discover how artificial food coloring affects both the appearance and potentially your health, and learn to make informed choices about colored food products.",
		content: `The vibrant colors in processed foods often catch our eye and make products more appealing. However, artificial coloring goes beyond mere aesthetics: these synthetic additives can mask the real quality of food and may have health implications.

Research has suggested potential links between artificial food colors and behavioral issues in children and allergic reactions. Look for products colored with natural ingredients, check ingredient lists for specific color names like Red 40 or Yellow 5, and choose naturally colorful whole foods when possible.`,
		imageCategory: "artificial_colors",
	},
	{
		title:   "Understanding Processed Food Ingredients",
		snippet: "A comprehensive guide to decoding complex ingredient lists and understanding what those long chemical names really mean for your health.",
		content: `Have you ever looked at a food label and felt overwhelmed by the long list of unfamiliar ingredients? Many processed foods contain numerous additives, preservatives, and artificial ingredients that can be difficult to understand.

While not all processed ingredients are harmful, it's important to know what you're consuming. Ingredients are listed by weight, so the first few items make up most of the product. Research unfamiliar names, prefer shorter ingredient lists, and treat additives used only for appearance or shelf life with healthy skepticism.`,
		imageCategory: "processed_foods",
	},
	{
		title:   "How Food Packaging Targets Children",
		snippet: "An inside look at the marketing tactics used on food packaging to appeal to children, and what parents should watch out for.",
		content: `Bright colors, cartoon mascots, and toy promotions make certain products irresistible to children, yet the foods behind the packaging are often high in sugar, sodium, and artificial additives.

Parents can push back by involving children in label reading, comparing sugar content across cereals and snacks, and explaining that fun packaging says nothing about what's inside. The nutrition facts panel, not the mascot, tells the real story.`,
		imageCategory: "kids_marketing",
	},
	{
		title:   "Why We Crave Packaged Snacks",
		snippet: "The science behind food cravings and how snack engineering keeps you reaching for more.",
		content: `Packaged snacks are engineered around the "bliss point": the precise combination of sugar, salt, and fat that maximizes craving. Understanding this helps explain why moderation is hard with certain products.

Reading labels for added sugars and sodium, eating whole foods first, and noticing marketing cues that trigger cravings are practical defenses. Awareness of the engineering behind snack foods is the first step toward balanced choices.`,
		imageCategory: "food_cravings",
	},
	{
		title:   "Sustainable Packaging and What It Means for Your Food",
		snippet: "Eco-friendly packaging claims are everywhere. Here's how to tell genuine sustainability from greenwashing, and what packaging can mean for food safety.",
		content: `Sustainability claims on food packaging range from meaningful certifications to vague marketing. Packaging also matters for safety: some materials can leach compounds into food, particularly with fatty or acidic products.

Look for recognized certification marks rather than generic leaf icons, prefer minimally packaged goods, and store food properly once opened. Sustainable and safe packaging choices usually point in the same direction: simpler materials, clearer labeling.`,
		imageCategory: "sustainable_packaging",
	},
}
