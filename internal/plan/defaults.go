package plan

// DefaultPlans is the launch catalog, seeded when the plans table is empty.
func DefaultPlans() []Plan {
	return []Plan{
		{ID: "p1", Name: "Plan 1", PricePaise: 52000, DailyPaise: 12000, Days: 47, Image: "assets/images/sa.jpg", Type: TypeBuy},
		{ID: "p2", Name: "Plan 2", PricePaise: 96000, DailyPaise: 21000, Days: 85, Image: "assets/images/re.jpg", Type: TypeBuy},
		{ID: "p3", Name: "Plan 3", PricePaise: 186000, DailyPaise: 42000, Days: 120, Image: "assets/images/ga.jpg", Type: TypeBuy},
		{ID: "p4", Name: "Plan 4", PricePaise: 498000, DailyPaise: 145800, Days: 160, Image: "assets/images/ma.jpg", Type: TypeTimer, TimerHours: 90},
		{ID: "p5", Name: "Plan 5", PricePaise: 1367000, DailyPaise: 456000, Days: 95, Image: "assets/images/sa.jpg", Type: TypeTimer, TimerHours: 115},
		{ID: "p6", Name: "Plan 6", PricePaise: 2866000, DailyPaise: 1061500, Days: 140, Image: "assets/images/re.jpg", Type: TypeTimer, TimerHours: 135},
		{ID: "p7", Name: "Plan 7", PricePaise: 4780000, DailyPaise: 1992000, Days: 130, Image: "assets/images/ga.jpg", Type: TypeBuy},
		{ID: "p8", Name: "Diamond Plan", PricePaise: 9700000, DailyPaise: 3833300, Days: 110, Image: "assets/images/ma.jpg", Type: TypeTimer, TimerHours: 50, Diamond: true},
	}
}
