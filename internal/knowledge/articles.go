package knowledge

var articles = []Article{
	{
		ID:       "1",
		Title:    "Understanding Soil pH and Plant Nutrition",
		Category: "Soil Health",
		Excerpt:  "Learn how soil pH affects nutrient availability and how to optimize it for your plants.",
		Content: `Soil pH is one of the most critical factors affecting plant health and nutrient uptake. Most plants prefer a slightly acidic to neutral pH between 6.0-7.0.

**Why pH Matters:**
- Controls nutrient availability
- Affects beneficial microorganism activity
- Influences soil structure
- Determines fertilizer effectiveness

**Testing Your Soil:**
Use a digital pH meter or test strips to measure soil pH. Test multiple areas of your garden as pH can vary.

**Adjusting pH:**
- Lower pH (more acidic): Use sulfur, pine needles, or organic compost
- Raise pH (less acidic): Use agricultural lime or wood ash

**Our Recommendation:**
Our humic acid concentrate helps buffer soil pH naturally while improving overall soil structure and nutrient uptake.`,
		Tags:     []string{"soil pH", "plant nutrition", "soil testing", "humic acid"},
		ReadTime: "5 min",
	},
	{
		ID:       "2",
		Title:    "The Benefits of Liquid vs. Granular Fertilizers",
		Category: "Plant Nutrition",
		Excerpt:  "Discover when to use liquid fertilizers and why they can be more effective than granular options.",
		Content: `Liquid fertilizers offer several advantages over granular fertilizers, especially for quick nutrient delivery and precise application.

**Advantages of Liquid Fertilizers:**
- Immediate nutrient availability
- Even distribution
- Easy absorption by roots and leaves
- Better control over application rates
- No risk of fertilizer burn when properly diluted

**When to Use Liquid Fertilizers:**
- During active growing season (spring/summer)
- For quick nutrient correction
- Container gardening
- Hydroponic systems
- When plants show nutrient deficiencies

**Application Tips:**
- Apply in early morning or late evening
- Dilute according to instructions
- Water plants before and after application
- Apply every 2-3 weeks during growing season

**Nature's Way Soil Products:**
Our liquid fertilizers are made fresh weekly and provide immediate nutrition that plants can use right away.`,
		Tags:     []string{"liquid fertilizer", "plant feeding", "fertilizer comparison", "application"},
		ReadTime: "4 min",
	},
	{
		ID:       "3",
		Title:    "Building Healthy Soil with Organic Amendments",
		Category: "Soil Health",
		Excerpt:  "Transform your soil naturally with organic amendments that improve structure and fertility.",
		Content: `Healthy soil is the foundation of successful gardening. Organic amendments improve soil structure, water retention, and nutrient content naturally.

**Key Organic Amendments:**

**Compost:**
- Improves soil structure
- Adds beneficial microorganisms
- Provides slow-release nutrients
- Increases water retention

**Humic Substances:**
- Enhance nutrient uptake
- Improve soil structure
- Increase water retention
- Stimulate root growth

**Biochar:**
- Long-term carbon storage
- Improves soil porosity
- Increases nutrient retention
- Supports beneficial microbes

**Seaweed Extracts:**
- Provide trace minerals
- Contain natural growth hormones
- Improve plant stress tolerance
- Enhance root development

**Application Schedule:**
- Spring: Add compost and humic amendments
- Growing season: Apply liquid amendments bi-weekly
- Fall: Incorporate organic matter for winter breakdown

**Building Soil Biology:**
Healthy soil contains billions of beneficial microorganisms that help plants absorb nutrients and fight diseases.`,
		Tags:     []string{"soil amendments", "organic matter", "soil biology", "compost"},
		ReadTime: "6 min",
	},
	{
		ID:       "4",
		Title:    "Organic Pest Control and Plant Health",
		Category: "Plant Care",
		Excerpt:  "Manage pests naturally while maintaining plant health using integrated pest management.",
		Content: `Healthy plants are naturally more resistant to pests and diseases. Focus on building plant health first, then address specific pest issues organically.

**Prevention First:**
- Strong, well-fed plants resist pests better
- Proper spacing improves air circulation
- Correct watering reduces fungal issues
- Healthy soil supports natural pest predators

**Beneficial Insects:**
Encourage beneficial insects by:
- Planting diverse flowers
- Avoiding broad-spectrum pesticides
- Providing habitat (beetle banks, native plants)
- Using companion planting

**Organic Control Methods:**
- Neem oil for soft-bodied insects
- Diatomaceous earth for crawling pests
- Bacillus thuringiensis for caterpillars
- Soap sprays for aphids and mites

**Plant Health Boosters:**
- Regular feeding with balanced organic fertilizers
- Kelp meal for trace minerals and plant hormones
- Compost tea for beneficial microorganisms
- Proper mulching to retain moisture

**Monitoring:**
Check plants regularly for early pest detection. Small problems are easier to manage than established infestations.`,
		Tags:     []string{"pest control", "organic gardening", "beneficial insects", "plant health"},
		ReadTime: "7 min",
	},
	{
		ID:       "5",
		Title:    "Seasonal Garden Care and Fertilization Schedule",
		Category: "Garden Planning",
		Excerpt:  "Plan your garden care throughout the year for optimal plant health and productivity.",
		Content: `Success in gardening comes from following natural seasonal rhythms and providing plants with what they need when they need it.

**Spring (March-May):**
- Soil preparation with compost and amendments
- Begin liquid fertilizer applications as growth starts
- Plant cool-season crops
- Start regular watering schedule
- Apply pre-emergent weed control

**Summer (June-August):**
- Peak growing season requires regular feeding
- Apply liquid fertilizers every 2-3 weeks
- Deep, infrequent watering
- Mulch to retain moisture
- Monitor for pests and diseases

**Fall (September-November):**
- Reduce nitrogen, increase phosphorus and potassium
- Plant cool-season crops for fall harvest
- Collect and compost fallen leaves
- Apply slow-release organic amendments
- Prepare beds for winter

**Winter (December-February):**
- Plan next year's garden
- Order seeds and plan rotations
- Maintain tools and equipment
- Study and learn new techniques
- Indoor seed starting for early crops

**Year-Round Indoor Plants:**
- Reduce feeding in winter months
- Increase feeding during active growth
- Monitor humidity and light levels
- Rotate plants for even growth`,
		Tags:     []string{"seasonal care", "garden planning", "fertilization schedule", "plant care"},
		ReadTime: "8 min",
	},
}
