package models

import "time"

// Default documents used when a content area is read before it has ever
// been edited. Each store inserts these on first access so the public
// site always has something to render.

// DefaultHomePage returns the initial home page content.
func DefaultHomePage() HomePage {
	now := time.Now().UTC()
	p := HomePage{
		Carousel: []CarouselSlide{
			{
				Image:       "/Images/Green.png",
				Title:       "Welcome to Hoffman's Reptiles",
				Description: "We have exotic animals from all over the world, including Asian water monitors, Argentine black and white tegus, and snakes such as vipers, pythons, and rattlesnakes.",
			},
			{
				Image:       "/Images/Red.png",
				Title:       "Exotic Snakes Collection",
				Description: "Our exotic snake collection includes pythons, rattlesnakes, and other rare species, carefully curated for reptile enthusiasts.",
			},
			{
				Image:       "/Images/Yello.png",
				Title:       "Rare Iguanas & More",
				Description: "We also showcase rare iguanas, tegus, and other reptiles from across the globe, ensuring unique choices for collectors.",
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	p.Info.Headline = "LOOKING FOR AN EXOTIC PET?"
	p.Info.Text = "Welcome to Hoffman's Reptiles, your go-to source for exotic animals from all over the world. We specialize in lizards, Asian water monitors, Argentine black & white tegus, and a wide selection of snakes including vipers, pythons, and rattlesnakes. Visit us at 2359 Concord Boulevard, Concord, California, 94520, for expert advice and the best in exotic reptiles."
	p.Split.Image = "/Images/Blue.png"
	p.Split.Title = "Lizards, Snakes & Animals of All Sorts"
	p.Split.Text = "We offer an extensive selection of reptiles, feeders, and exotic animals from all over the world. Whether you're looking for lizards, snakes, or rare species, Hoffman's Reptiles has something for every enthusiast."
	p.Grid = HomeGrid{
		Title:    "A sample of our animals",
		Subtitle: "Changes weekly. Please visit our store to see what is in stock.",
		Images: []string{
			"/Images/1.png", "/Images/2.png", "/Images/3.png", "/Images/4.png",
			"/Images/5.png", "/Images/6.png", "/Images/7.png", "/Images/8.png",
		},
	}
	p.Footer = SectionFooter{
		Title: "Hoffman's Reptile Shop",
		Text:  "Serving Concord, Walnut Creek, San Francisco, and the Bay Area.",
	}
	return p
}

// DefaultAnimalsPage returns the initial animals page content.
// The seed animals get their slugs assigned by the store on insert.
func DefaultAnimalsPage() AnimalsPage {
	now := time.Now().UTC()
	return AnimalsPage{
		HeroURL:     "/Images/hero_animal_page.png",
		WelcomeText: "Welcome to Hoffman's Reptiles! Explore snakes, lizards, turtles, and more, perfect for beginners and seasoned keepers.",
		Animals:     []Animal{},
		Footer: SectionFooter{
			Title: "Hoffman's Reptiles",
			Text:  "Exotic pet shop with reptiles, feeders, and supplies.\n2359 Concord Blvd, Concord, CA 94520\nPhone: (925) 671-9106\nHours: Mon-Fri 12-6:30 PM | Sat 10-5 PM | Sun Closed",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// DefaultGalleryPage returns the initial gallery page content.
func DefaultGalleryPage() GalleryPage {
	now := time.Now().UTC()
	p := GalleryPage{
		HeroURL:      "/Images/hero_gallery.png",
		HeroTitle:    "Our Gallery",
		HeroSubtitle: "Explore Our Exotic Animals",
		Images:       []string{},
		Footer: SectionFooter{
			Title: "Hoffman's Reptiles",
			Text:  "2359 Concord Blvd, Concord, CA 94520",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	p.Info.Title = "Photo Gallery"
	p.Info.Text = "See our reptiles, shop life, and events."
	return p
}

// DefaultAboutPage returns the initial about page content.
func DefaultAboutPage() AboutPage {
	now := time.Now().UTC()
	p := AboutPage{
		CreatedAt: now,
		UpdatedAt: now,
	}
	p.Hero.Title = "About Us"
	p.Hero.Subtitle = "Learn more about Hoffman's Reptile Shop"
	p.Footer = SectionFooter{Title: "Hoffman's Reptiles"}
	return p
}

// DefaultContactPage returns the initial contact page content.
func DefaultContactPage() ContactPage {
	now := time.Now().UTC()
	p := ContactPage{
		Details: ContactDetails{
			Address: "2359 Concord Blvd, Concord, CA 94520",
			Phone:   "(925) 671-9106",
			Email:   "info@hoffmansreptiles.com",
			Hours:   "Mon-Fri: 12 PM - 6:30 PM | Sat: 10 AM - 5 PM | Sun: Closed",
		},
		Footer: SectionFooter{
			Title: "Hoffman's Reptiles",
			Text:  "Trusted reptile experts in Concord, CA",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	p.Info.Title = "Contact Hoffman's Reptiles"
	p.Info.Text = "Tell visitors how to reach you, typical response times, etc."
	return p
}

// DefaultAnalyticsPage returns a zeroed analytics document.
func DefaultAnalyticsPage() AnalyticsPage {
	now := time.Now().UTC()
	return AnalyticsPage{
		TotalViews: 0,
		Weeks:      []WeekBucket{},
		Clicks:     []ClickRecord{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
