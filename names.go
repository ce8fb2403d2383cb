package main

// Team names per division, Indian cities by tier
var teamNames = map[string][]string{
	DivisionOne: {
		"Mumbai Indians", "Chennai Super Kings", "Royal Challengers Bangalore",
		"Kolkata Knight Riders", "Delhi Capitals", "Sunrisers Hyderabad",
		"Rajasthan Royals", "Punjab Kings", "Lucknow Super Giants", "Gujarat Titans",
	},
	DivisionTwo: {
		"Pune Warriors", "Kochi Tuskers", "Deccan Chargers", "Ahmedabad Rockets",
		"Indore Holkars", "Nagpur Oranges", "Jaipur Pinks", "Surat Diamonds",
		"Visakhapatnam Steel", "Kanpur Leather",
	},
	DivisionThree: {
		"Bhopal Lakers", "Patna Pilots", "Ranchi Rhinos", "Guwahati Gaurs",
		"Bhubaneswar Bulls", "Raipur Rangers", "Dehradun Doons", "Goa Gaurdians",
		"Trivandrum Titans", "Chandigarh Champs",
	},
}

var firstNames = []string{
	"Aarav", "Vihaan", "Vivaan", "Ananya", "Diya", "Advik", "Kabir", "Rohan", "Aryan", "Ishaan",
	"Arjun", "Reyansh", "Mohammed", "Sai", "Ayaan", "Krishna", "Dhruv", "Ishita", "Anvi", "Aditi",
	"Rahul", "Amit", "Suresh", "Ramesh", "Vijay", "Sanjay", "Manoj", "Rajesh", "Sunil", "Anil",
	"Priya", "Neha", "Sneha", "Anjali", "Pooja", "Riya", "Shreya", "Tanvi", "Kavya", "Meera",
	"Virat", "Rohit", "MS", "Hardik", "Ravindra", "Jasprit", "Shikhar", "Rishabh", "Shreyas", "KL",
	"Sachin", "Sourav", "Virender", "Yuvraj", "Zaheer", "Harbhajan", "Gautam", "VVS", "Anil", "Rahul",
}

var lastNames = []string{
	"Patel", "Sharma", "Singh", "Kumar", "Gupta", "Shah", "Jain", "Mehta", "Mishra", "Yadav",
	"Das", "Reddy", "Nair", "Iyer", "Rao", "Gowda", "Pillai", "Menon", "Chopra", "Malhotra",
	"Kohli", "Dhoni", "Sharma", "Jadeja", "Bumrah", "Dhawan", "Pant", "Iyer", "Rahul", "Pandya",
	"Tendulkar", "Ganguly", "Sehwag", "Singh", "Khan", "Gambhir", "Laxman", "Kumble", "Dravid",
	"Agarwal", "Verma", "Joshi", "Kulkarni", "Deshmukh", "Patil", "Pawar", "Chavan", "Bhat", "Acharya",
}
