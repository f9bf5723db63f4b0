package tarkovdev

// Документы запросов к api.tarkov.dev. Строковые аргументы передаются
// через переменные, поэтому экранирование делает сервер.

const itemOffersFields = `
	name
	shortName
	avg24hPrice
	buyFor {
		price
		vendor { name }
		requirements { type value }
	}`

const itemCountFields = `
	count
	item {
		name
		shortName
		avg24hPrice
		buyFor {
			price
			vendor { name }
		}
	}`

const ammoQuery = `query Ammo($name: String, $lang: LanguageCode) {
	items(categoryNames: [Ammo], name: $name, lang: $lang) {` + itemOffersFields + `
		properties {
			... on ItemPropertiesAmmo {
				damage
				penetrationPower
				fragmentationChance
			}
		}
	}
}`

const itemsQuery = `query Items($name: String, $lang: LanguageCode) {
	items(name: $name, lang: $lang) {` + itemOffersFields + `
		sellFor {
			price
			vendor { name }
		}
		link
	}
}`

const categoryQuery = `query Category($categories: [ItemCategoryName], $limit: Int, $lang: LanguageCode) {
	items(categoryNames: $categories, limit: $limit, lang: $lang) {` + itemOffersFields + `
		sellFor {
			price
			vendor { name }
		}
		link
	}
}`

const tasksQuery = `query Tasks($limit: Int, $lang: LanguageCode) {
	tasks(limit: $limit, lang: $lang) {
		name
		tarkovDataId
		minPlayerLevel
		trader { name normalizedName }
		map { name }
		objectives { description }
		wikiLink
	}
}`

const taskItemsQuery = `query TaskItems($limit: Int, $lang: LanguageCode) {
	tasks(limit: $limit, lang: $lang) {
		name
		trader { name }
		objectives {
			... on TaskObjectiveItem {
				item {` + itemOffersFields + `
					link
				}
				count
				foundInRaid
			}
		}
	}
}`

const craftsQuery = `query Crafts($lang: LanguageCode) {
	crafts(lang: $lang) {
		station { name normalizedName }
		level
		duration
		rewardItems {` + itemCountFields + `
		}
		requiredItems {` + itemCountFields + `
		}
	}
}`

const bartersQuery = `query Barters($name: String, $limit: Int, $lang: LanguageCode) {
	items(name: $name, lang: $lang, limit: $limit) {
		name
		shortName
		link
		bartersFor {
			trader { name }
			level
			requiredItems {
				count
				item { name shortName }
			}
		}
		bartersUsing {
			trader { name }
			level
			rewardItems {
				count
				item { name shortName }
			}
		}
	}
}`
