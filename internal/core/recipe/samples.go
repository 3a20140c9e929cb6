package recipe

const defaultSampleCount = 5

var sampleRecipes = []RankedRecipe{
	{
		ID:          "52772",
		Title:       "Teriyaki Chicken Casserole",
		Ingredients: []string{"chicken", "soy sauce", "honey", "rice"},
		Image:       "https://www.themealdb.com/images/media/meals/wvpsxx1468256321.jpg",
		Time:        45,
		Difficulty:  DifficultyMedium,
		Category:    "Chicken",
		Instructions: "Preheat oven to 350° F. Spray a 9x13-inch baking pan with non-stick spray. " +
			"Combine soy sauce, ½ cup water, brown sugar, ginger and garlic in a small saucepan and cover. " +
			"Bring to a boil over medium heat. Remove lid and cook for one minute once boiling. " +
			"Meanwhile, stir together the corn starch and 2 tablespoons of water in a separate dish until smooth. " +
			"Once sauce is boiling, add mixture to the saucepan and stir to combine. " +
			"Cook until the sauce starts to thicken then remove from heat. " +
			"Place the chicken breasts in the prepared pan. Pour one cup of the sauce over top of chicken. " +
			"Place chicken in oven and bake 35 minutes or until cooked through. " +
			"Remove from oven and shred chicken in the dish using two forks. " +
			"Meanwhile, steam or cook rice according to package instructions. " +
			"Add the cooked rice to the casserole dish with the chicken. " +
			"Add most of the remaining sauce, reserving a bit to drizzle over the top when serving. " +
			"Toss everything together in the casserole dish until combined. " +
			"Return to oven and cook 15 minutes. Remove from oven and let stand 5 minutes before serving. " +
			"Drizzle each serving with remaining sauce.",
		Tags:               []string{"chicken", "casserole", "asian"},
		MatchedIngredients: []string{},
	},
	{
		ID:          "52818",
		Title:       "Chicken Fajita Mac and Cheese",
		Ingredients: []string{"chicken", "cheese", "pasta", "peppers"},
		Image:       "https://www.themealdb.com/images/media/meals/qrqywr1503066605.jpg",
		Time:        35,
		Difficulty:  DifficultyEasy,
		Category:    "Pasta",
		Instructions: "Fry your onion, peppers and garlic in olive oil until nice and golden brown. " +
			"Add your chicken breast and season well with salt and pepper, paprika and cumin. " +
			"Once chicken is sealed and slightly coloured add your tin of tomatoes and chicken stock. " +
			"Leave to simmer for 20-25 minutes. Meanwhile, boil your macaroni as per instructions. " +
			"Once macaroni is cooked, drain and add to the pan with the peppers, chicken and tomatoes. " +
			"Stir in grated cheese, reserving some to go on top. " +
			"Pour into an ovenproof dish, top with cheese and bake in a preheated oven at 200°C for 20-25 minutes until golden brown. " +
			"Serve with garlic bread or a side salad.",
		Tags:               []string{"pasta", "chicken", "cheese", "mexican"},
		MatchedIngredients: []string{},
	},
}

// SampleRecipes 回傳內建的示範食譜，count <= 0 時使用預設數量
func SampleRecipes(count int) []RankedRecipe {
	if count <= 0 {
		count = defaultSampleCount
	}
	if count > len(sampleRecipes) {
		count = len(sampleRecipes)
	}

	out := make([]RankedRecipe, count)
	copy(out, sampleRecipes[:count])
	return out
}
